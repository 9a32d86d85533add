package search

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mattnico/ldsmcp-sub001/internal/transport"
)

func init() {
	Register("conference", &Conference{})
}

// Conference implements Provider for the general-conference search endpoint.
// Unlike the other families it takes a POST with a JSON body.
type Conference struct{}

func (c *Conference) Name() string       { return "conference" }
func (c *Conference) HTTPMethod() string { return http.MethodPost }

func (c *Conference) DefaultBase() string {
	return "https://www.churchofjesuschrist.org/search/proxy/general-conference-search"
}

type conferenceRequest struct {
	Query     string `json:"query"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

func (c *Conference) BuildRequest(base string, p Params) (*PreparedRequest, error) {
	if base == "" {
		base = c.DefaultBase()
	}
	if strings.TrimSpace(p.Query) == "" {
		return nil, fmt.Errorf("conference: query is required")
	}
	// The request body carries no offset; a zero start means unset.
	if p.Start != 0 && p.Start < 1 {
		return nil, fmt.Errorf("conference: start must be >= 1, got %d", p.Start)
	}

	var startDate, endDate time.Time
	var err error
	if p.StartDate != "" {
		if startDate, err = time.Parse("2006-01-02", p.StartDate); err != nil {
			return nil, &InvalidDateRangeError{Start: p.StartDate, End: p.EndDate}
		}
	}
	if p.EndDate != "" {
		if endDate, err = time.Parse("2006-01-02", p.EndDate); err != nil {
			return nil, &InvalidDateRangeError{Start: p.StartDate, End: p.EndDate}
		}
	}
	if p.StartDate != "" && p.EndDate != "" && startDate.After(endDate) {
		return nil, &InvalidDateRangeError{Start: p.StartDate, End: p.EndDate}
	}

	body, err := json.Marshal(conferenceRequest{
		Query:     p.Query,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("conference: encode request: %w", err)
	}

	return &PreparedRequest{URL: base, Method: http.MethodPost, Body: body}, nil
}

func (c *Conference) Normalize(raw *transport.RawResponse) (*Result, error) {
	var payload struct {
		Results []struct {
			Title        string `json:"title"`
			URI          string `json:"uri"`
			Snippet      string `json:"snippet"`
			Speaker      string `json:"speaker"`
			CalendarYear string `json:"calendarYear"`
			SessionName  string `json:"sessionName"`
		} `json:"results"`
		Total     int  `json:"total"`
		NextStart *int `json:"nextStart"`
	}
	if err := json.Unmarshal(raw.Body, &payload); err != nil {
		return nil, fmt.Errorf("conference: parse response: %w", err)
	}

	items := make([]Hit, 0, len(payload.Results))
	for _, r := range payload.Results {
		meta := map[string]string{}
		if r.Speaker != "" {
			meta["speaker"] = r.Speaker
		}
		if r.CalendarYear != "" {
			meta["year"] = r.CalendarYear
		}
		if r.SessionName != "" {
			meta["session"] = r.SessionName
		}
		items = append(items, Hit{
			Title:     r.Title,
			Snippet:   snippet(r.Snippet),
			URL:       r.URI,
			MediaType: MediaWeb,
			Metadata:  meta,
		})
	}

	// The backend pages by numeric offset; stringify it so the cursor stays
	// opaque to callers.
	next := ""
	if payload.NextStart != nil {
		next = strconv.Itoa(*payload.NextStart)
	}

	return &Result{
		Domain:        "conference",
		Items:         items,
		NextStart:     next,
		TotalEstimate: payload.Total,
	}, nil
}
