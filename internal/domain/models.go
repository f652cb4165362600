package domain

import (
	"strconv"
	"time"
)

// DocumentSource holds the indexed fields of a document
type DocumentSource struct {
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Year     *int     `json:"year"`
	Abstract string   `json:"abstract"`
	FullText string   `json:"full_text"`
	URL      string   `json:"url,omitempty"`
}

// YearString returns the year as text, or "" when the backend did not know it
func (s DocumentSource) YearString() string {
	if s.Year == nil {
		return ""
	}
	return strconv.Itoa(*s.Year)
}

// Highlight maps a field name to its highlighted fragments.
// Matched terms are wrapped in <em></em>.
type Highlight map[string][]string

// First returns the first fragment for field, if any
func (h Highlight) First(field string) (string, bool) {
	frags := h[field]
	if len(frags) == 0 {
		return "", false
	}
	return frags[0], true
}

// ResultSummary is a single search hit
type ResultSummary struct {
	ID        string         `json:"id"`
	Score     float64        `json:"score"`
	Source    DocumentSource `json:"source"`
	Highlight Highlight      `json:"highlight,omitempty"`
}

// Document is a full document retrieved by id
type Document struct {
	ID     string         `json:"id"`
	Source DocumentSource `json:"source"`
}

// SearchQuery is what the user asked for
type SearchQuery struct {
	Text string
	Page int
	Size int
}

// SearchPage is one page of results for a query
type SearchPage struct {
	Query      SearchQuery
	Results    []ResultSummary
	Total      int
	Suggestion string
	Elapsed    time.Duration
}

// TotalPages returns the number of pages needed to show Total results
func (p SearchPage) TotalPages() int {
	return PageCount(p.Total, p.Query.Size)
}

// PageCount returns ceil(total/size), at least 1
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}
