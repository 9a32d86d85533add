package filter

import (
	"strings"
	"testing"
)

func TestBuildAllDomains(t *testing.T) {
	for _, d := range Domains() {
		f, err := Build(d, Options{})
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if !balanced(f) {
			t.Fatalf("%s: unbalanced parens in %q", d, f)
		}
		for _, p := range []string{"adbid", "adbpl", "cid=", "short_code", "imageView"} {
			if !strings.Contains(f, `-siteSearch:"*`+p+`*"`) {
				t.Fatalf("%s: missing exclusion %q in %q", d, p, f)
			}
		}
		if !strings.Contains(f, `lang=eng`) {
			t.Fatalf("%s: missing default locale clause in %q", d, f)
		}
	}
}

func TestBuildSitePath(t *testing.T) {
	f, err := Build(GospelTopics, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(f, `siteSearch:"*churchofjesuschrist.org/study/manual/gospel-topics*"`) {
		t.Fatalf("got %q", f)
	}
}

func TestBuildBYUSpeechesHost(t *testing.T) {
	f, err := Build(BYUSpeeches, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(f, "speeches.byu.edu") {
		t.Fatalf("got %q", f)
	}
	if strings.Contains(f, "churchofjesuschrist.org") {
		t.Fatalf("byu-speeches should not scope to the church host: %q", f)
	}
}

func TestBuildLanguageOverride(t *testing.T) {
	f, err := Build(Liahona, Options{Language: "spa"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(f, `siteSearch:"*lang=spa*"`) {
		t.Fatalf("got %q", f)
	}
	if strings.Contains(f, "lang=eng") {
		t.Fatalf("override should drop the default locale disjunction: %q", f)
	}
}

func TestBuildYearClause(t *testing.T) {
	f, err := Build(Liahona, Options{Year: "2024"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(f, `AND siteSearch:"*2024*"`) {
		t.Fatalf("got %q", f)
	}

	// Year is ignored on domains not published by year.
	f2, err := Build(GeneralHandbook, Options{Year: "2024"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(f2, "2024") {
		t.Fatalf("handbook filter should not carry a year clause: %q", f2)
	}
}

func TestBuildEditionClause(t *testing.T) {
	f, err := Build(FTSOY, Options{Edition: "2022"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(f, `AND siteSearch:"*2022*"`) {
		t.Fatalf("got %q", f)
	}
}

func TestBuildUnknownDomain(t *testing.T) {
	_, err := Build(Domain("podcasts"), Options{})
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*UnknownDomainError); !ok {
		t.Fatalf("got %T", err)
	}
}

func TestClauseEscapesQuotes(t *testing.T) {
	if c := clause(`a"b`); c != `siteSearch:"*a\"b*"` {
		t.Fatalf("got %q", c)
	}
}

func balanced(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
