// Package filter builds the boolean siteSearch filter expressions consumed by
// the vertex-search endpoint. Each content domain is described by a declarative
// template; one renderer turns a template plus caller options into the exact
// filter string the backend expects.
package filter

import (
	"fmt"
	"sort"
	"strings"
)

// Domain identifies a content domain with its own filter dialect.
type Domain string

const (
	GospelTopics    Domain = "gospel-topics"
	ComeFollowMe    Domain = "come-follow-me"
	GeneralHandbook Domain = "general-handbook"
	Liahona         Domain = "liahona"
	FTSOY           Domain = "ftsoy"
	Children        Domain = "children"
	YAWeekly        Domain = "ya-weekly"
	ChurchHistory   Domain = "church-history"
	BasicBeliefs    Domain = "basic-beliefs"
	BYUSpeeches     Domain = "byu-speeches"
	Ensign          Domain = "ensign"
	NewEra          Domain = "new-era"
	Friend          Domain = "friend"
	Seminary        Domain = "seminary"
	Institute       Domain = "institute"
)

// Options narrows a domain filter. Language replaces the default
// English-or-unlabeled locale clause. Year and Edition append an extra
// clause on domains that publish by year or edition; they are ignored
// elsewhere.
type Options struct {
	Language string `json:"language,omitempty"`
	Year     string `json:"year,omitempty"`
	Edition  string `json:"edition,omitempty"`
}

// UnknownDomainError is returned when a domain is not in the enumerated set.
type UnknownDomainError struct {
	Domain Domain
}

func (e *UnknownDomainError) Error() string {
	return fmt.Sprintf("unknown content domain: %s", string(e.Domain))
}

// template describes one domain's filter dialect. host defaults to the main
// church host when empty. yeared marks domains published by year or edition.
type template struct {
	host     string
	sitePath string
	yeared   bool
}

const defaultHost = "churchofjesuschrist.org"

var templates = map[Domain]template{
	GospelTopics:    {sitePath: "study/manual/gospel-topics"},
	ComeFollowMe:    {sitePath: "study/manual/come-follow-me"},
	GeneralHandbook: {sitePath: "study/manual/general-handbook"},
	Liahona:         {sitePath: "study/liahona", yeared: true},
	FTSOY:           {sitePath: "study/manual/for-the-strength-of-youth", yeared: true},
	Children:        {sitePath: "study/children"},
	YAWeekly:        {sitePath: "study/ya-weekly", yeared: true},
	ChurchHistory:   {sitePath: "study/manual/church-history"},
	BasicBeliefs:    {sitePath: "study/manual/basic-beliefs"},
	BYUSpeeches:     {host: "speeches.byu.edu", sitePath: "talks"},
	Ensign:          {sitePath: "study/ensign", yeared: true},
	NewEra:          {sitePath: "study/new-era", yeared: true},
	Friend:          {sitePath: "study/friend", yeared: true},
	Seminary:        {sitePath: "study/manual/seminary"},
	Institute:       {sitePath: "study/manual/institute"},
}

// trackingParams are URL query markers whose variants the backend indexes as
// separate documents; every domain filter excludes them.
var trackingParams = []string{"adbid", "adbpl", "cid=", "short_code", "imageView"}

// Build renders the filter expression for a domain. Pure; no I/O.
func Build(domain Domain, opts Options) (string, error) {
	tpl, ok := templates[domain]
	if !ok {
		return "", &UnknownDomainError{Domain: domain}
	}

	host := tpl.host
	if host == "" {
		host = defaultHost
	}

	var b strings.Builder
	b.WriteString(clause(host + "/" + tpl.sitePath))
	for _, p := range trackingParams {
		b.WriteString(" AND -")
		b.WriteString(clause(p))
	}

	b.WriteString(" AND ")
	if opts.Language != "" {
		b.WriteString(clause("lang=" + opts.Language))
	} else {
		// English pages plus pages with no locale marker at all.
		b.WriteString("(" + clause("lang=eng") + " OR -" + clause("lang=") + ")")
	}

	if tpl.yeared {
		token := opts.Year
		if token == "" {
			token = opts.Edition
		}
		if token != "" {
			b.WriteString(" AND " + clause(token))
		}
	}

	return b.String(), nil
}

// clause renders one siteSearch literal with the value quoted and wildcarded.
func clause(value string) string {
	return `siteSearch:"*` + strings.ReplaceAll(value, `"`, `\"`) + `*"`
}

// Domains returns the enumerated domain set in sorted order.
func Domains() []Domain {
	out := make([]Domain, 0, len(templates))
	for d := range templates {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
