// Package search unifies the content platform's heterogeneous search
// endpoints. Each endpoint family is a Provider: it builds the exact request
// shape its backend expects and normalizes the backend's payload into the
// common Result shape. The Executor sends requests and classifies outcomes.
package search

import (
	"github.com/mattnico/ldsmcp-sub001/internal/filter"
	"github.com/mattnico/ldsmcp-sub001/internal/transport"
)

// Provider is one endpoint family. Implementations register themselves from
// init() and must be stateless: every call owns its own data.
type Provider interface {
	// Name returns the family identifier (e.g. "vertex", "conference").
	Name() string

	// HTTPMethod returns "GET" or "POST" for the upstream endpoint.
	HTTPMethod() string

	// DefaultBase returns the default upstream URL for this family.
	DefaultBase() string

	// BuildRequest validates params and builds the outbound request.
	// Validation failures are returned before any network activity.
	BuildRequest(base string, p Params) (*PreparedRequest, error)

	// Normalize parses the upstream payload into a Result.
	Normalize(raw *transport.RawResponse) (*Result, error)
}

// MediaType classifies a hit by content kind.
type MediaType string

const (
	MediaWeb   MediaType = "web"
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaMusic MediaType = "music"
	MediaPDF   MediaType = "pdf"
)

// Params holds the normalized caller intent. Each provider reads the fields
// it needs and ignores the rest.
type Params struct {
	Query    string `json:"query"`
	Start    int    `json:"start,omitempty"`
	PageSize int    `json:"page_size,omitempty"`

	// Vertex multi-type search.
	SearchType    MediaType      `json:"search_type,omitempty"`
	OrderBy       string         `json:"order_by,omitempty"`
	Filter        string         `json:"filter,omitempty"`
	Domain        filter.Domain  `json:"domain,omitempty"`
	FilterOptions filter.Options `json:"filter_options,omitempty"`

	// Conference search.
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`

	// Scripture search.
	Collection string `json:"collection,omitempty"`

	// Archive search filter bag.
	Source    int    `json:"source,omitempty"`
	Author    string `json:"author,omitempty"`
	DateRange string `json:"date_range,omitempty"`

	// Metadata and listing endpoints.
	ID     string `json:"id,omitempty"`
	Locale string `json:"locale,omitempty"`
}

// PreparedRequest fully determines one outbound call. Immutable once built.
type PreparedRequest struct {
	URL    string
	Method string
	Body   []byte
}

// Hit is one normalized search result. Snippet stays nil when the backend
// carried no snippet field; an empty string would be indistinguishable from
// a real empty snippet.
type Hit struct {
	Title     string            `json:"title"`
	Snippet   *string           `json:"snippet,omitempty"`
	URL       string            `json:"url"`
	MediaType MediaType         `json:"media_type"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Result is the normalized output of one search. Items preserves backend
// ranking order. NextStart is an opaque cursor: numeric offsets are
// stringified so callers never assume arithmetic works across families; empty
// means no further pages. Callers must check Error before consuming Items:
// a legitimate zero-hit response has empty Items and a nil Error.
type Result struct {
	Domain        string     `json:"domain"`
	Items         []Hit      `json:"items"`
	NextStart     string     `json:"next_start,omitempty"`
	TotalEstimate int        `json:"total_estimate,omitempty"`
	Error         *ErrorInfo `json:"error,omitempty"`
}

func snippet(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
