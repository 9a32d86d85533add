package resource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattnico/ldsmcp-sub001/internal/search"
	"github.com/mattnico/ldsmcp-sub001/internal/transport"
)

func newTestResolver(t *testing.T, handler http.Handler) (*Resolver, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	exec := search.NewExecutor(transport.NewClient(), nil, nil)
	return NewResolver(exec, srv.URL, "eng", nil), srv
}

func TestListStableOrderNoIO(t *testing.T) {
	r := NewResolver(nil, "", "", nil)
	first := r.List()
	second := r.List()
	require.Equal(t, first, second)
	require.NotEmpty(t, first)
	assert.Equal(t, "gospel-library://conference/latest", first[0].URI)
	for _, res := range first {
		assert.True(t, strings.HasPrefix(res.URI, Scheme), res.URI)
		assert.NotEmpty(t, res.Name)
		assert.NotEmpty(t, res.MimeType)
	}
}

func TestReadUnknownURINeverThrows(t *testing.T) {
	r := NewResolver(nil, "", "", nil)
	got := r.Read(context.Background(), "gospel-library://unknown")
	require.Len(t, got.Contents, 1)
	assert.Contains(t, got.Contents[0].Text, "gospel-library://unknown")
	assert.Equal(t, "text/plain", got.Contents[0].MimeType)
}

func TestLatestConference(t *testing.T) {
	cases := []struct {
		now   string
		year  int
		month string
	}{
		{"2024-02-15", 2023, "10"},
		{"2024-04-01", 2024, "04"},
		{"2024-10-01", 2024, "10"},
		{"2024-12-31", 2024, "10"},
	}
	for _, tc := range cases {
		now, err := time.Parse("2006-01-02", tc.now)
		require.NoError(t, err)
		y, m := LatestConference(now)
		assert.Equal(t, tc.year, y, tc.now)
		assert.Equal(t, tc.month, m, tc.now)
	}

	// Every month maps, boundary months included.
	for month := 1; month <= 12; month++ {
		now := time.Date(2025, time.Month(month), 15, 0, 0, 0, 0, time.UTC)
		y, m := LatestConference(now)
		switch {
		case month < 4:
			assert.Equal(t, 2024, y)
			assert.Equal(t, "10", m)
		case month < 10:
			assert.Equal(t, 2025, y)
			assert.Equal(t, "04", m)
		default:
			assert.Equal(t, 2025, y)
			assert.Equal(t, "10", m)
		}
	}
}

func TestReadLatestConferencePath(t *testing.T) {
	var gotPath string
	r, _ := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path + "?lang=" + req.URL.Query().Get("lang")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body><p>Conference talks</p></body></html>"))
	}))
	r.now = func() time.Time { return time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC) }

	got := r.Read(context.Background(), Scheme+"conference/latest")
	require.Len(t, got.Contents, 1)
	assert.Equal(t, "/study/general-conference/2023/10?lang=eng", gotPath)
	assert.Contains(t, got.Contents[0].Text, "Conference talks")
}

func TestReadScriptureTruncation(t *testing.T) {
	long := strings.Repeat("a", 2000)
	r, _ := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(long))
	}))

	got := r.Read(context.Background(), Scheme+"scriptures/bofm")
	require.Len(t, got.Contents, 1)
	text := got.Contents[0].Text
	assert.LessOrEqual(t, len([]rune(text)), 503)
	assert.True(t, strings.HasSuffix(text, "..."))
}

func TestReadShortBodyUnmodified(t *testing.T) {
	r, _ := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("1 Nephi 1"))
	}))

	got := r.Read(context.Background(), Scheme+"scriptures/bofm")
	assert.Equal(t, "1 Nephi 1", got.Contents[0].Text)
}

func TestReadManualTruncation(t *testing.T) {
	long := strings.Repeat("b", 5000)
	r, _ := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(long))
	}))

	got := r.Read(context.Background(), Scheme+"manual/come-follow-me")
	text := got.Contents[0].Text
	assert.LessOrEqual(t, len([]rune(text)), 1003)
	assert.True(t, strings.HasSuffix(text, "..."))
}

func TestReadFetchFailureDegradesToText(t *testing.T) {
	r, _ := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	got := r.Read(context.Background(), Scheme+"scriptures/bofm")
	require.Len(t, got.Contents, 1)
	assert.Contains(t, got.Contents[0].Text, "Book of Mormon")
	assert.Contains(t, got.Contents[0].Text, "Unable to load")
}

func TestReadEmptyBodyDegradesToText(t *testing.T) {
	r, _ := newTestResolver(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	got := r.Read(context.Background(), Scheme+"manual/come-follow-me")
	assert.Contains(t, got.Contents[0].Text, "Unable to load")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 500))
	assert.Equal(t, strings.Repeat("x", 500)+"...", truncate(strings.Repeat("x", 501), 500))
	exact := strings.Repeat("y", 500)
	assert.Equal(t, exact, truncate(exact, 500))
}
