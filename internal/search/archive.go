package search

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mattnico/ldsmcp-sub001/internal/transport"
)

func init() {
	Register("archive", &Archive{})
}

// Archive implements Provider for the historical archive search endpoint.
// It takes an open filter bag: source (numeric collection id), author (slug)
// and dateRange (enumerated token); whichever are present are serialized.
type Archive struct{}

func (a *Archive) Name() string       { return "archive" }
func (a *Archive) HTTPMethod() string { return http.MethodGet }

func (a *Archive) DefaultBase() string {
	return "https://www.churchofjesuschrist.org/search/proxy/archive-search"
}

func (a *Archive) BuildRequest(base string, p Params) (*PreparedRequest, error) {
	if base == "" {
		base = a.DefaultBase()
	}
	if strings.TrimSpace(p.Query) == "" {
		return nil, fmt.Errorf("archive: query is required")
	}
	// The start offset is optional upstream; a zero start means unset.
	if p.Start != 0 && p.Start < 1 {
		return nil, fmt.Errorf("archive: start must be >= 1, got %d", p.Start)
	}

	q := url.Values{}
	q.Set("q", p.Query)
	if p.Start > 0 {
		q.Set("start", strconv.Itoa(p.Start))
	}
	if p.Source > 0 {
		q.Set("source", strconv.Itoa(p.Source))
	}
	if p.Author != "" {
		q.Set("author", p.Author)
	}
	if p.DateRange != "" {
		q.Set("dateRange", p.DateRange)
	}

	return &PreparedRequest{URL: base + "?" + q.Encode(), Method: http.MethodGet}, nil
}

func (a *Archive) Normalize(raw *transport.RawResponse) (*Result, error) {
	var payload struct {
		Hits []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
			Author      string `json:"author"`
			Date        string `json:"date"`
		} `json:"hits"`
		Total    int    `json:"total"`
		NextPage string `json:"nextPage"`
	}
	if err := json.Unmarshal(raw.Body, &payload); err != nil {
		return nil, fmt.Errorf("archive: parse response: %w", err)
	}

	items := make([]Hit, 0, len(payload.Hits))
	for _, h := range payload.Hits {
		meta := map[string]string{}
		if h.Author != "" {
			meta["author"] = h.Author
		}
		if h.Date != "" {
			meta["date"] = h.Date
		}
		items = append(items, Hit{
			Title:     h.Title,
			Snippet:   snippet(h.Description),
			URL:       h.URL,
			MediaType: MediaWeb,
			Metadata:  meta,
		})
	}

	return &Result{
		Domain:        "archive",
		Items:         items,
		NextStart:     payload.NextPage,
		TotalEstimate: payload.Total,
	}, nil
}
