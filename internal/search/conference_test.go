package search

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mattnico/ldsmcp-sub001/internal/transport"
)

func TestConferenceBuildRequestBody(t *testing.T) {
	c := &Conference{}
	req, err := c.BuildRequest("", Params{Query: "covenant", StartDate: "2020-01-01", EndDate: "2024-01-01"})
	if err != nil {
		t.Fatal(err)
	}
	if req.Method != "POST" {
		t.Fatalf("got %q", req.Method)
	}
	var body map[string]string
	if err := json.Unmarshal(req.Body, &body); err != nil {
		t.Fatal(err)
	}
	if body["query"] != "covenant" || body["startDate"] != "2020-01-01" || body["endDate"] != "2024-01-01" {
		t.Fatalf("got %v", body)
	}

	// Dates are optional and omitted from the body when unset.
	req2, err := c.BuildRequest("", Params{Query: "covenant"})
	if err != nil {
		t.Fatal(err)
	}
	var body2 map[string]any
	json.Unmarshal(req2.Body, &body2)
	if _, ok := body2["startDate"]; ok {
		t.Fatalf("got %v", body2)
	}
}

func TestConferenceBuildRequestInvalidDateRange(t *testing.T) {
	c := &Conference{}
	_, err := c.BuildRequest("", Params{Query: "covenant", StartDate: "2024-01-01", EndDate: "2020-01-01"})
	if err == nil {
		t.Fatal("expected error")
	}
	var rangeErr *InvalidDateRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("got %T", err)
	}

	if _, err := c.BuildRequest("", Params{Query: "covenant", StartDate: "April 2024"}); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestConferenceBuildRequestValidation(t *testing.T) {
	c := &Conference{}
	if _, err := c.BuildRequest("", Params{Query: "  "}); err == nil {
		t.Fatal("expected error for empty query")
	}
	if _, err := c.BuildRequest("", Params{Query: "covenant", Start: -1}); err == nil {
		t.Fatal("expected error for start < 1")
	}
}

func TestConferenceNormalize(t *testing.T) {
	c := &Conference{}
	body := `{
		"results": [
			{"title": "Covenants", "uri": "https://www.churchofjesuschrist.org/study/general-conference/2024/04/talk",
			 "snippet": "…the <em>covenant</em> path…", "speaker": "Russell M. Nelson",
			 "calendarYear": "2024", "sessionName": "Sunday Morning"}
		],
		"total": 57,
		"nextStart": 11
	}`
	res, err := c.Normalize(&transport.RawResponse{StatusCode: 200, Body: []byte(body)})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Items) != 1 {
		t.Fatalf("got %d items", len(res.Items))
	}
	hit := res.Items[0]
	if hit.Metadata["speaker"] != "Russell M. Nelson" || hit.Metadata["session"] != "Sunday Morning" {
		t.Fatalf("got %v", hit.Metadata)
	}
	if hit.Snippet == nil {
		t.Fatal("snippet missing")
	}
	// Numeric offset surfaces as an opaque string cursor.
	if res.NextStart != "11" {
		t.Fatalf("got %q", res.NextStart)
	}
	if res.TotalEstimate != 57 {
		t.Fatalf("got %d", res.TotalEstimate)
	}
}

func TestConferenceNormalizeNoNextPage(t *testing.T) {
	c := &Conference{}
	res, err := c.Normalize(&transport.RawResponse{StatusCode: 200, Body: []byte(`{"results":[],"total":0}`)})
	if err != nil {
		t.Fatal(err)
	}
	if res.NextStart != "" {
		t.Fatalf("absent offset must leave the cursor unset, got %q", res.NextStart)
	}
}
