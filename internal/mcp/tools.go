package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/mattnico/ldsmcp-sub001/internal/filter"
	"github.com/mattnico/ldsmcp-sub001/internal/search"
)

// toolArgs is the argument shape shared by every search tool. Each tool's
// schema exposes the subset of fields its provider reads.
type toolArgs struct {
	Query      string `json:"query"`
	Start      int    `json:"start"`
	SearchType string `json:"search_type"`
	Domain     string `json:"domain"`
	Language   string `json:"language"`
	Year       string `json:"year"`
	Edition    string `json:"edition"`
	OrderBy    string `json:"order_by"`
	Filter     string `json:"filter"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Collection string `json:"collection"`
	Source     int    `json:"source"`
	Author     string `json:"author"`
	DateRange  string `json:"date_range"`
	ID         string `json:"id"`
	Locale     string `json:"locale"`
}

func parseArgs(raw json.RawMessage) (toolArgs, error) {
	var args toolArgs
	if len(raw) == 0 {
		return args, nil
	}
	err := json.Unmarshal(raw, &args)
	return args, err
}

// searchParams converts tool arguments into provider params. Paged tools get
// a default start of 1 when the caller omits it.
func (a toolArgs) searchParams() search.Params {
	start := a.Start
	if start == 0 {
		start = 1
	}
	return search.Params{
		Query:      a.Query,
		Start:      start,
		SearchType: search.MediaType(a.SearchType),
		OrderBy:    a.OrderBy,
		Filter:     a.Filter,
		Domain:     filter.Domain(a.Domain),
		FilterOptions: filter.Options{
			Language: a.Language,
			Year:     a.Year,
			Edition:  a.Edition,
		},
		StartDate:  a.StartDate,
		EndDate:    a.EndDate,
		Collection: a.Collection,
		Source:     a.Source,
		Author:     a.Author,
		DateRange:  a.DateRange,
		ID:         a.ID,
		Locale:     a.Locale,
	}
}

// toolDef binds one MCP tool to a provider family.
type toolDef struct {
	name        string
	description string
	family      string
	schema      *jsonschema.Schema
}

// mustSchema parses a tool input schema. Schemas are static literals, so a
// parse failure is a programming error surfaced at startup.
func mustSchema(raw string) *jsonschema.Schema {
	var s jsonschema.Schema
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		panic(fmt.Sprintf("tool schema: %v", err))
	}
	return &s
}

var toolDefs = []toolDef{
	{
		name:        "search_gospel_library",
		family:      "vertex",
		description: "Search Gospel Library content. Scope with domain (e.g. gospel-topics, come-follow-me, general-handbook, liahona) and search_type (web, image, video, music, pdf).",
		schema: mustSchema(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Search text"},
				"start": {"type": "integer", "minimum": 1, "description": "1-based result offset"},
				"search_type": {"type": "string", "enum": ["web", "image", "video", "music", "pdf"]},
				"domain": {"type": "string", "description": "Content domain to scope the search to"},
				"language": {"type": "string", "description": "Three-letter language code, e.g. spa"},
				"year": {"type": "string", "description": "Publication year for yearly domains"},
				"order_by": {"type": "string", "description": "Sort order; empty means relevance"}
			},
			"required": ["query"]
		}`),
	},
	{
		name:        "search_general_conference",
		family:      "conference",
		description: "Search general conference talks, optionally within an ISO-8601 date range.",
		schema: mustSchema(`{
			"type": "object",
			"properties": {
				"query": {"type": "string"},
				"start_date": {"type": "string", "description": "ISO-8601 date, e.g. 2020-04-01"},
				"end_date": {"type": "string", "description": "ISO-8601 date"}
			},
			"required": ["query"]
		}`),
	},
	{
		name:        "search_scriptures",
		family:      "scripture",
		description: "Search the scriptures, optionally restricted to one volume (Old Testament, New Testament, Book of Mormon, Doctrine and Covenants, Pearl of Great Price).",
		schema: mustSchema(`{
			"type": "object",
			"properties": {
				"query": {"type": "string"},
				"collection": {"type": "string", "description": "Scripture volume name"}
			},
			"required": ["query"]
		}`),
	},
	{
		name:        "search_archive",
		family:      "archive",
		description: "Search the historical archive. source, author and date_range are optional filters.",
		schema: mustSchema(`{
			"type": "object",
			"properties": {
				"query": {"type": "string"},
				"source": {"type": "integer", "description": "Numeric collection id"},
				"author": {"type": "string", "description": "Author slug"},
				"date_range": {"type": "string", "description": "Enumerated date range token"}
			},
			"required": ["query"]
		}`),
	},
	{
		name:        "search_newsroom",
		family:      "newsroom",
		description: "Search newsroom articles.",
		schema: mustSchema(`{
			"type": "object",
			"properties": {
				"query": {"type": "string"},
				"start": {"type": "integer", "minimum": 1}
			},
			"required": ["query"]
		}`),
	},
	{
		name:        "fetch_video_metadata",
		family:      "video-metadata",
		description: "Fetch metadata for one video by id.",
		schema: mustSchema(`{
			"type": "object",
			"properties": {
				"id": {"type": "string"}
			},
			"required": ["id"]
		}`),
	},
	{
		name:        "list_scripture_books",
		family:      "scripture-books",
		description: "List scripture books for a locale.",
		schema: mustSchema(`{
			"type": "object",
			"properties": {
				"locale": {"type": "string", "description": "Locale code, default eng"}
			}
		}`),
	},
	{
		name:        "list_search_strings",
		family:      "search-strings",
		description: "List the localized search query templates for a locale.",
		schema: mustSchema(`{
			"type": "object",
			"properties": {
				"locale": {"type": "string", "description": "Locale code, default eng"}
			}
		}`),
	},
}
