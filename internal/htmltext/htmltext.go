// Package htmltext converts HTML pages into plain text for previews.
package htmltext

import (
	"net/url"
	"regexp"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

var (
	scriptRe = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	tagRe    = regexp.MustCompile(`(?s)<[^>]*>`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// Extract returns the readable text of an HTML document. It runs a
// readability-style article extractor first and falls back to stripping tags
// when extraction yields nothing. Total: malformed input degrades to
// best-effort text, never an error.
func Extract(html, pageURL string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}

	if parsed, err := url.Parse(pageURL); err == nil {
		if article, err := readability.FromReader(strings.NewReader(html), parsed); err == nil {
			if text := strings.TrimSpace(article.TextContent); text != "" {
				return text
			}
		}
	}

	return strip(html)
}

// strip removes markup without interpreting document structure.
func strip(html string) string {
	text := scriptRe.ReplaceAllString(html, " ")
	text = tagRe.ReplaceAllString(text, " ")
	text = strings.NewReplacer("&nbsp;", " ", "&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&#39;", "'").Replace(text)
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}
