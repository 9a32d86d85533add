package search

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mattnico/ldsmcp-sub001/internal/transport"
)

func init() {
	Register("search-strings", &SearchStrings{})
}

// SearchStrings implements Provider for the localized search-strings listing
// endpoint, keyed by a locale code. The backend returns the named query
// templates the platform's own search UI uses.
type SearchStrings struct{}

func (s *SearchStrings) Name() string       { return "search-strings" }
func (s *SearchStrings) HTTPMethod() string { return http.MethodGet }

func (s *SearchStrings) DefaultBase() string {
	return "https://www.churchofjesuschrist.org/search/api/search-strings"
}

func (s *SearchStrings) BuildRequest(base string, p Params) (*PreparedRequest, error) {
	if base == "" {
		base = s.DefaultBase()
	}
	locale := p.Locale
	if locale == "" {
		locale = "eng"
	}

	q := url.Values{}
	q.Set("lang", locale)

	return &PreparedRequest{URL: base + "?" + q.Encode(), Method: http.MethodGet}, nil
}

func (s *SearchStrings) Normalize(raw *transport.RawResponse) (*Result, error) {
	var payload struct {
		Strings []struct {
			Name     string `json:"name"`
			Template string `json:"template"`
		} `json:"strings"`
	}
	if err := json.Unmarshal(raw.Body, &payload); err != nil {
		return nil, fmt.Errorf("search-strings: parse response: %w", err)
	}

	items := make([]Hit, 0, len(payload.Strings))
	for _, entry := range payload.Strings {
		items = append(items, Hit{
			Title:     entry.Name,
			Snippet:   snippet(entry.Template),
			MediaType: MediaWeb,
		})
	}

	return &Result{Domain: "search-strings", Items: items, TotalEstimate: len(items)}, nil
}
