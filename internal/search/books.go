package search

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mattnico/ldsmcp-sub001/internal/transport"
)

func init() {
	Register("scripture-books", &ScriptureBooks{})
}

// ScriptureBooks implements Provider for the scripture books listing
// endpoint, keyed by a locale code.
type ScriptureBooks struct{}

func (s *ScriptureBooks) Name() string       { return "scripture-books" }
func (s *ScriptureBooks) HTTPMethod() string { return http.MethodGet }

func (s *ScriptureBooks) DefaultBase() string {
	return "https://www.churchofjesuschrist.org/study/api/scripture-books"
}

func (s *ScriptureBooks) BuildRequest(base string, p Params) (*PreparedRequest, error) {
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

func (s *ScriptureBooks) Normalize(raw *transport.RawResponse) (*Result, error) {
	var payload struct {
		Books []struct {
			Name   string `json:"name"`
			Abbrev string `json:"abbrev"`
			URI    string `json:"uri"`
			Volume string `json:"volume"`
		} `json:"books"`
	}
	if err := json.Unmarshal(raw.Body, &payload); err != nil {
		return nil, fmt.Errorf("scripture-books: parse response: %w", err)
	}

	items := make([]Hit, 0, len(payload.Books))
	for _, b := range payload.Books {
		meta := map[string]string{}
		if b.Abbrev != "" {
			meta["abbrev"] = b.Abbrev
		}
		if b.Volume != "" {
			meta["volume"] = b.Volume
		}
		items = append(items, Hit{
			Title:     b.Name,
			URL:       b.URI,
			MediaType: MediaWeb,
			Metadata:  meta,
		})
	}

	return &Result{Domain: "scripture-books", Items: items, TotalEstimate: len(items)}, nil
}
