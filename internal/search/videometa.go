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
	Register("video-metadata", &VideoMetadata{})
}

// VideoMetadata implements Provider for the video metadata lookup endpoint.
// It is keyed by a video id and has no filters or pagination; the normalized
// result carries a single video hit.
type VideoMetadata struct{}

func (v *VideoMetadata) Name() string       { return "video-metadata" }
func (v *VideoMetadata) HTTPMethod() string { return http.MethodGet }

func (v *VideoMetadata) DefaultBase() string {
	return "https://www.churchofjesuschrist.org/media/api/video-metadata"
}

func (v *VideoMetadata) BuildRequest(base string, p Params) (*PreparedRequest, error) {
	if base == "" {
		base = v.DefaultBase()
	}
	if strings.TrimSpace(p.ID) == "" {
		return nil, fmt.Errorf("video-metadata: id is required")
	}

	q := url.Values{}
	q.Set("id", p.ID)

	return &PreparedRequest{URL: base + "?" + q.Encode(), Method: http.MethodGet}, nil
}

func (v *VideoMetadata) Normalize(raw *transport.RawResponse) (*Result, error) {
	var payload struct {
		ID           string `json:"id"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		ThumbnailURL string `json:"thumbnailUrl"`
		Duration     string `json:"duration"`
		StreamURL    string `json:"streamUrl"`
	}
	if err := json.Unmarshal(raw.Body, &payload); err != nil {
		return nil, fmt.Errorf("video-metadata: parse response: %w", err)
	}

	meta := map[string]string{"id": payload.ID}
	if payload.Duration != "" {
		meta["duration"] = payload.Duration
	}
	if payload.ThumbnailURL != "" {
		meta["thumbnail_url"] = payload.ThumbnailURL
	}

	return &Result{
		Domain: "video-metadata",
		Items: []Hit{{
			Title:     payload.Title,
			Snippet:   snippet(payload.Description),
			URL:       payload.StreamURL,
			MediaType: MediaVideo,
			Metadata:  meta,
		}},
	}, nil
}
