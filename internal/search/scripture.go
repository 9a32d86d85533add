package search

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mattnico/ldsmcp-sub001/internal/transport"
)

func init() {
	Register("scripture", &Scripture{})
}

// Scripture implements Provider for the scripture search endpoint.
type Scripture struct{}

func (s *Scripture) Name() string       { return "scripture" }
func (s *Scripture) HTTPMethod() string { return http.MethodGet }

func (s *Scripture) DefaultBase() string {
	return "https://www.churchofjesuschrist.org/search/proxy/scripture-search"
}

// ScriptureCollections enumerates the named volumes the backend accepts as
// collectionName.
var ScriptureCollections = []string{
	"Old Testament",
	"New Testament",
	"Book of Mormon",
	"Doctrine and Covenants",
	"Pearl of Great Price",
}

func validCollection(name string) bool {
	for _, c := range ScriptureCollections {
		if c == name {
			return true
		}
	}
	return false
}

func (s *Scripture) BuildRequest(base string, p Params) (*PreparedRequest, error) {
	if base == "" {
		base = s.DefaultBase()
	}
	if strings.TrimSpace(p.Query) == "" {
		return nil, fmt.Errorf("scripture: query is required")
	}
	// This wire shape has no offset parameter; a zero start means unset.
	if p.Start != 0 && p.Start < 1 {
		return nil, fmt.Errorf("scripture: start must be >= 1, got %d", p.Start)
	}
	if p.Collection != "" && !validCollection(p.Collection) {
		return nil, &UnknownCollectionError{Name: p.Collection}
	}

	q := url.Values{}
	q.Set("query", p.Query)
	if p.Collection != "" {
		q.Set("collectionName", p.Collection)
	}

	return &PreparedRequest{URL: base + "?" + q.Encode(), Method: http.MethodGet}, nil
}

func (s *Scripture) Normalize(raw *transport.RawResponse) (*Result, error) {
	var payload struct {
		Verses []struct {
			Reference string `json:"reference"`
			Text      string `json:"text"`
			URI       string `json:"uri"`
			Volume    string `json:"volume"`
		} `json:"verses"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(raw.Body, &payload); err != nil {
		return nil, fmt.Errorf("scripture: parse response: %w", err)
	}

	items := make([]Hit, 0, len(payload.Verses))
	for _, v := range payload.Verses {
		meta := map[string]string{}
		if v.Volume != "" {
			meta["volume"] = v.Volume
		}
		items = append(items, Hit{
			Title:     v.Reference,
			Snippet:   snippet(v.Text),
			URL:       v.URI,
			MediaType: MediaWeb,
			Metadata:  meta,
		})
	}

	return &Result{
		Domain:        "scripture",
		Items:         items,
		TotalEstimate: payload.Total,
	}, nil
}
