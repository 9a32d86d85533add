// Package config loads the server configuration from YAML with
// "os.environ/NAME" value resolution.
package config

// Config is the top-level config.yaml structure.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Search SearchConfig `yaml:"search"`

	// Endpoints maps provider family names (vertex, conference, ...) to
	// base-URL overrides. Families not listed use their defaults.
	Endpoints map[string]string `yaml:"endpoints,omitempty"`
}

// ServerConfig holds the serving surfaces.
type ServerConfig struct {
	// HTTPAddr enables the REST surface when set (e.g. ":8080").
	HTTPAddr string `yaml:"http_addr,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// SearchConfig holds cross-family search behavior.
type SearchConfig struct {
	// ContentBase is the host root used for resource content fetches.
	ContentBase string `yaml:"content_base,omitempty"`
	Language    string `yaml:"language,omitempty"`
	// TimeoutSeconds bounds each upstream call.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}
