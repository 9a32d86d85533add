package search

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mattnico/ldsmcp-sub001/internal/filter"
	"github.com/mattnico/ldsmcp-sub001/internal/transport"
)

func init() {
	Register("vertex", &Vertex{})
}

// Vertex implements Provider for the shared vertex-search endpoint. All of
// the site-scoped specialized searches are parameterizations of this
// endpoint distinguished only by the filter string, which is built centrally
// by the filter package when the caller passes a Domain.
type Vertex struct{}

func (v *Vertex) Name() string       { return "vertex" }
func (v *Vertex) HTTPMethod() string { return http.MethodGet }

func (v *Vertex) DefaultBase() string {
	return "https://www.churchofjesuschrist.org/search/proxy/vertex-search"
}

var vertexSearchTypes = map[MediaType]bool{
	MediaWeb:   true,
	MediaImage: true,
	MediaVideo: true,
	MediaMusic: true,
	MediaPDF:   true,
}

func (v *Vertex) BuildRequest(base string, p Params) (*PreparedRequest, error) {
	if base == "" {
		base = v.DefaultBase()
	}
	if strings.TrimSpace(p.Query) == "" {
		return nil, fmt.Errorf("vertex: query is required")
	}
	if p.Start < 1 {
		return nil, fmt.Errorf("vertex: start must be >= 1, got %d", p.Start)
	}
	searchType := p.SearchType
	if searchType == "" {
		searchType = MediaWeb
	}
	if !vertexSearchTypes[searchType] {
		return nil, fmt.Errorf("vertex: unsupported search type %q", searchType)
	}

	f := p.Filter
	if f == "" && p.Domain != "" {
		built, err := filter.Build(p.Domain, p.FilterOptions)
		if err != nil {
			return nil, err
		}
		f = built
	}

	// The backend expects every parameter present, orderBy included, even
	// when empty. Missing parameters make it silently return zero results.
	q := url.Values{}
	q.Set("q", p.Query)
	q.Set("start", fmt.Sprintf("%d", p.Start))
	q.Set("searchType", string(searchType))
	q.Set("filter", f)
	q.Set("orderBy", p.OrderBy)

	return &PreparedRequest{URL: base + "?" + q.Encode(), Method: http.MethodGet}, nil
}

func (v *Vertex) Normalize(raw *transport.RawResponse) (*Result, error) {
	var payload struct {
		Results []struct {
			Document struct {
				DerivedStructData struct {
					Title       string `json:"title"`
					Link        string `json:"link"`
					DisplayLink string `json:"displayLink"`
					MimeType    string `json:"mimeType"`
					Snippets    []struct {
						Snippet string `json:"snippet"`
					} `json:"snippets"`
				} `json:"derivedStructData"`
			} `json:"document"`
		} `json:"results"`
		TotalSize     int    `json:"totalSize"`
		NextPageToken string `json:"nextPageToken"`
	}
	if err := json.Unmarshal(raw.Body, &payload); err != nil {
		return nil, fmt.Errorf("vertex: parse response: %w", err)
	}

	items := make([]Hit, 0, len(payload.Results))
	for _, r := range payload.Results {
		d := r.Document.DerivedStructData
		var snip *string
		if len(d.Snippets) > 0 {
			snip = snippet(strings.TrimSpace(d.Snippets[0].Snippet))
		}
		meta := map[string]string{}
		if d.DisplayLink != "" {
			meta["display_link"] = d.DisplayLink
		}
		items = append(items, Hit{
			Title:     d.Title,
			Snippet:   snip,
			URL:       d.Link,
			MediaType: mediaTypeFromMime(d.MimeType),
			Metadata:  meta,
		})
	}

	return &Result{
		Domain:        "vertex",
		Items:         items,
		NextStart:     payload.NextPageToken,
		TotalEstimate: payload.TotalSize,
	}, nil
}

func mediaTypeFromMime(mime string) MediaType {
	switch {
	case mime == "application/pdf":
		return MediaPDF
	case strings.HasPrefix(mime, "image/"):
		return MediaImage
	case strings.HasPrefix(mime, "video/"):
		return MediaVideo
	case strings.HasPrefix(mime, "audio/"):
		return MediaMusic
	default:
		return MediaWeb
	}
}
