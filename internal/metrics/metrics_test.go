package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestObserveSearchAppearsInScrape(t *testing.T) {
	ObserveSearch("vertex", "ok", 120*time.Millisecond)
	ObserveSearch("conference", "http_error", 40*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	if err != nil {
		t.Fatal(err)
	}
	out := string(body)
	if !strings.Contains(out, `ldsmcp_searches_total{outcome="ok",provider="vertex"}`) {
		t.Fatalf("missing vertex counter in scrape:\n%s", out)
	}
	if !strings.Contains(out, "ldsmcp_search_duration_seconds") {
		t.Fatalf("missing duration histogram in scrape")
	}
}
