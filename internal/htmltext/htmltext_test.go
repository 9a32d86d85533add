package htmltext

import (
	"strings"
	"testing"
)

func TestExtractEmpty(t *testing.T) {
	if got := Extract("", "https://example.org"); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := Extract("   \n ", "https://example.org"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractArticle(t *testing.T) {
	html := `<html><head><title>Alma 32</title></head><body>
	<article><h1>Alma 32</h1><p>Now, as I said concerning faith, faith is not to have a perfect knowledge of things.</p></article>
	</body></html>`
	got := Extract(html, "https://www.churchofjesuschrist.org/study/scriptures/bofm/alma/32")
	if !strings.Contains(got, "perfect knowledge") {
		t.Fatalf("got %q", got)
	}
	if strings.Contains(got, "<") {
		t.Fatalf("markup leaked into %q", got)
	}
}

func TestExtractMalformedNeverFails(t *testing.T) {
	got := Extract("<div><p>broken <b>markup", "not a url at all")
	if !strings.Contains(got, "broken") || !strings.Contains(got, "markup") {
		t.Fatalf("got %q", got)
	}
}

func TestStripRemovesScriptsAndEntities(t *testing.T) {
	got := strip(`<script>var x = 1;</script><p>Faith &amp; works&nbsp;together</p>`)
	if strings.Contains(got, "var x") {
		t.Fatalf("script body leaked into %q", got)
	}
	if got != "Faith & works together" {
		t.Fatalf("got %q", got)
	}
}
