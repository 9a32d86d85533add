// Package resource maps a fixed catalog of logical gospel-library:// URIs to
// concrete content fetches. Read never fails past its own boundary: unknown
// URIs and fetch failures degrade to descriptive text, because the upstream
// caller contract assumes Read always returns renderable content.
package resource

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mattnico/ldsmcp-sub001/internal/htmltext"
	"github.com/mattnico/ldsmcp-sub001/internal/search"
)

// Scheme prefixes every logical resource identifier.
const Scheme = "gospel-library://"

// Preview limits in runes, part of the observable contract.
const (
	scripturePreviewLimit = 500
	manualPreviewLimit    = 1000
)

const ellipsis = "..."

// Resource is one static catalog entry. The catalog is read-only and
// process-wide; it is defined at startup and never mutated.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType"`
}

// Content is one element of a read result.
type Content struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

// ReadResult wraps the contents returned by Read.
type ReadResult struct {
	Contents []Content `json:"contents"`
}

type entry struct {
	Resource
	path         string // content path under the study base
	previewLimit int
	latest       bool // path resolved from the latest conference cycle
}

var catalog = []entry{
	{
		Resource: Resource{
			URI:         Scheme + "conference/latest",
			Name:        "Latest General Conference",
			Description: "Talks from the most recently completed general conference",
			MimeType:    "text/plain",
		},
		latest:       true,
		previewLimit: manualPreviewLimit,
	},
	{
		Resource: Resource{
			URI:         Scheme + "scriptures/ot",
			Name:        "Old Testament",
			MimeType:    "text/plain",
			Description: "Old Testament table of contents",
		},
		path:         "study/scriptures/ot",
		previewLimit: scripturePreviewLimit,
	},
	{
		Resource: Resource{
			URI:         Scheme + "scriptures/nt",
			Name:        "New Testament",
			MimeType:    "text/plain",
			Description: "New Testament table of contents",
		},
		path:         "study/scriptures/nt",
		previewLimit: scripturePreviewLimit,
	},
	{
		Resource: Resource{
			URI:         Scheme + "scriptures/bofm",
			Name:        "Book of Mormon",
			MimeType:    "text/plain",
			Description: "Book of Mormon table of contents",
		},
		path:         "study/scriptures/bofm",
		previewLimit: scripturePreviewLimit,
	},
	{
		Resource: Resource{
			URI:         Scheme + "scriptures/dc-testament",
			Name:        "Doctrine and Covenants",
			MimeType:    "text/plain",
			Description: "Doctrine and Covenants table of contents",
		},
		path:         "study/scriptures/dc-testament",
		previewLimit: scripturePreviewLimit,
	},
	{
		Resource: Resource{
			URI:         Scheme + "scriptures/pgp",
			Name:        "Pearl of Great Price",
			MimeType:    "text/plain",
			Description: "Pearl of Great Price table of contents",
		},
		path:         "study/scriptures/pgp",
		previewLimit: scripturePreviewLimit,
	},
	{
		Resource: Resource{
			URI:         Scheme + "manual/come-follow-me",
			Name:        "Come, Follow Me",
			MimeType:    "text/plain",
			Description: "Current Come, Follow Me study manual",
		},
		path:         "study/manual/come-follow-me",
		previewLimit: manualPreviewLimit,
	},
}

// Resolver reads catalog entries through the shared executor.
type Resolver struct {
	exec     *search.Executor
	baseURL  string
	language string
	log      *zap.Logger
	now      func() time.Time
}

// NewResolver builds a resolver. baseURL is the content host root without a
// trailing slash; empty uses the production host.
func NewResolver(exec *search.Executor, baseURL, language string, log *zap.Logger) *Resolver {
	if baseURL == "" {
		baseURL = "https://www.churchofjesuschrist.org"
	}
	if language == "" {
		language = "eng"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		exec:     exec,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		language: language,
		log:      log,
		now:      time.Now,
	}
}

// List returns the static catalog in stable order. No I/O.
func (r *Resolver) List() []Resource {
	out := make([]Resource, len(catalog))
	for i, e := range catalog {
		out[i] = e.Resource
	}
	return out
}

// Read resolves a logical URI to preview text. It never returns an error:
// unknown URIs and load failures become descriptive text payloads.
func (r *Resolver) Read(ctx context.Context, uri string) ReadResult {
	var found *entry
	for i := range catalog {
		if catalog[i].URI == uri {
			found = &catalog[i]
			break
		}
	}
	if found == nil {
		return ReadResult{Contents: []Content{{
			URI:      uri,
			MimeType: "text/plain",
			Text:     fmt.Sprintf("Resource not found: %s", uri),
		}}}
	}

	path := found.path
	if found.latest {
		year, month := LatestConference(r.now())
		path = fmt.Sprintf("study/general-conference/%d/%s", year, month)
	}
	url := fmt.Sprintf("%s/%s?lang=%s", r.baseURL, path, r.language)

	raw, errInfo := r.exec.Fetch(ctx, url)
	if errInfo != nil || len(raw.Body) == 0 {
		if errInfo != nil {
			r.log.Warn("resource load failed",
				zap.String("uri", uri),
				zap.String("kind", string(errInfo.Kind)),
			)
		}
		return ReadResult{Contents: []Content{{
			URI:      uri,
			MimeType: "text/plain",
			Text:     fmt.Sprintf("Unable to load %s right now.", found.Name),
		}}}
	}

	text := string(raw.Body)
	if strings.Contains(raw.ContentType, "text/html") || strings.HasPrefix(strings.TrimSpace(text), "<") {
		text = htmltext.Extract(text, url)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ReadResult{Contents: []Content{{
			URI:      uri,
			MimeType: "text/plain",
			Text:     fmt.Sprintf("Unable to load %s right now.", found.Name),
		}}}
	}

	return ReadResult{Contents: []Content{{
		URI:      uri,
		MimeType: found.MimeType,
		Text:     truncate(text, found.previewLimit),
	}}}
}

// LatestConference returns the year and month key of the most recently
// completed semiannual conference cycle. Conferences occur in April and
// October; the boundary months count as already held.
func LatestConference(now time.Time) (int, string) {
	y, m := now.Year(), int(now.Month())
	switch {
	case m < 4:
		return y - 1, "10"
	case m < 10:
		return y, "04"
	default:
		return y, "10"
	}
}

// truncate cuts the preview at limit runes, appending the ellipsis marker.
// Shorter bodies pass through unmodified.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}
