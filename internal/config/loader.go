package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a config.yaml file and returns a Config with environment
// variable references resolved and defaults applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	resolveEnvVars(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func resolveEnvVars(cfg *Config) {
	cfg.Search.ContentBase = ResolveEnvVar(cfg.Search.ContentBase)
	for name, base := range cfg.Endpoints {
		cfg.Endpoints[name] = ResolveEnvVar(base)
	}
}

func setDefaults(cfg *Config) {
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Search.Language == "" {
		cfg.Search.Language = "eng"
	}
	if cfg.Search.TimeoutSeconds == 0 {
		cfg.Search.TimeoutSeconds = 30
	}
}
