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
	Register("newsroom", &Newsroom{})
}

// Newsroom implements Provider for the newsroom article search endpoint.
type Newsroom struct{}

func (n *Newsroom) Name() string       { return "newsroom" }
func (n *Newsroom) HTTPMethod() string { return http.MethodGet }

func (n *Newsroom) DefaultBase() string {
	return "https://newsroom.churchofjesuschrist.org/api/search"
}

func (n *Newsroom) BuildRequest(base string, p Params) (*PreparedRequest, error) {
	if base == "" {
		base = n.DefaultBase()
	}
	if strings.TrimSpace(p.Query) == "" {
		return nil, fmt.Errorf("newsroom: query is required")
	}
	if p.Start < 1 {
		return nil, fmt.Errorf("newsroom: start must be >= 1, got %d", p.Start)
	}

	q := url.Values{}
	q.Set("q", p.Query)
	q.Set("start", strconv.Itoa(p.Start))

	return &PreparedRequest{URL: base + "?" + q.Encode(), Method: http.MethodGet}, nil
}

func (n *Newsroom) Normalize(raw *transport.RawResponse) (*Result, error) {
	var payload struct {
		Articles []struct {
			Headline string `json:"headline"`
			Link     string `json:"link"`
			Summary  string `json:"summary"`
			Date     string `json:"date"`
		} `json:"articles"`
		Total     int  `json:"total"`
		NextStart *int `json:"nextStart"`
	}
	if err := json.Unmarshal(raw.Body, &payload); err != nil {
		return nil, fmt.Errorf("newsroom: parse response: %w", err)
	}

	items := make([]Hit, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		meta := map[string]string{}
		if a.Date != "" {
			meta["date"] = a.Date
		}
		items = append(items, Hit{
			Title:     a.Headline,
			Snippet:   snippet(a.Summary),
			URL:       a.Link,
			MediaType: MediaWeb,
			Metadata:  meta,
		})
	}

	next := ""
	if payload.NextStart != nil {
		next = strconv.Itoa(*payload.NextStart)
	}

	return &Result{
		Domain:        "newsroom",
		Items:         items,
		NextStart:     next,
		TotalEstimate: payload.Total,
	}, nil
}
