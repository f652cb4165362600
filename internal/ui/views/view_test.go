package views

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"docsearch/internal/domain"
)

func year(y int) *int { return &y }

func sampleResults(n int) []domain.ResultSummary {
	results := make([]domain.ResultSummary, n)
	for i := range results {
		results[i] = domain.ResultSummary{
			ID: fmt.Sprintf("doc-%d", i),
			Source: domain.DocumentSource{
				Title:    fmt.Sprintf("Paper %d", i),
				Authors:  []string{"Ann", "Bob"},
				Year:     year(2020 + i),
				Abstract: "An abstract",
			},
		}
	}
	return results
}

func baseState() ViewState {
	return ViewState{
		Width:          100,
		Height:         40,
		SearchInput:    "> germany",
		Page:           1,
		TotalPages:     1,
		PageSize:       10,
		ViewportHeight: 4,
	}
}

func TestRenderNoResults(t *testing.T) {
	r := NewRenderer(200)
	st := baseState()
	st.LastQuery = "qwertyxyz"

	out := ansi.Strip(r.Render(st))
	assert.Contains(t, out, "No results found.")
	assert.Contains(t, out, "0 results found in 0 ms for 'qwertyxyz'")
	assert.Contains(t, out, "docsearch")
}

func TestRenderStatsHiddenWithoutQuery(t *testing.T) {
	r := NewRenderer(200)
	out := ansi.Strip(r.Render(baseState()))
	assert.NotContains(t, out, "found in")
}

func TestRenderCards(t *testing.T) {
	r := NewRenderer(200)
	st := baseState()
	st.LastQuery = "paper"
	st.Results = sampleResults(2)
	st.Results[0].Highlight = domain.Highlight{
		"title":    {"<em>Paper</em> zero"},
		"abstract": {"about <em>paper</em>s"},
	}
	st.Total = 2
	st.ElapsedMs = 12

	out := ansi.Strip(r.Render(st))
	assert.Contains(t, out, "2 results found in 12 ms for 'paper'")
	assert.Contains(t, out, "Paper zero")
	assert.NotContains(t, out, "<em>")
	assert.Contains(t, out, "about papers")
	assert.Contains(t, out, "Ann, Bob — 2020")
	assert.Contains(t, out, "Paper 1")
	assert.Contains(t, out, "Ann, Bob — 2021")
	assert.Contains(t, out, "An abstract...")
	assert.NotContains(t, out, "No results found.")
}

func TestRenderScrollIndicators(t *testing.T) {
	r := NewRenderer(200)
	st := baseState()
	st.LastQuery = "paper"
	st.Results = sampleResults(6)
	st.Total = 6
	st.ViewportOffset = 1
	st.ViewportHeight = 2

	out := ansi.Strip(r.Render(st))
	assert.Contains(t, out, "1 more above")
	assert.Contains(t, out, "3 more below")
	assert.NotContains(t, out, "Paper 0")
	assert.Contains(t, out, "Paper 1")
	assert.Contains(t, out, "Paper 2")
	assert.NotContains(t, out, "Paper 3")
}

func TestRenderSuggestion(t *testing.T) {
	r := NewRenderer(200)

	st := baseState()
	st.LastQuery = "germny"
	st.Suggestion = "germany"
	out := ansi.Strip(r.Render(st))
	assert.Contains(t, out, "Did you mean germany?")

	st.Results = sampleResults(1)
	st.Total = 1
	out = ansi.Strip(r.Render(st))
	assert.Contains(t, out, "Or search instead for germany")

	st.LastQuery = "GERMANY"
	out = ansi.Strip(r.Render(st))
	assert.NotContains(t, out, "search instead")
	assert.NotContains(t, out, "Did you mean")
}

func TestRenderPagination(t *testing.T) {
	r := NewRenderer(200)
	st := baseState()
	st.LastQuery = "paper"
	st.Results = sampleResults(2)
	st.Total = 25
	st.Page = 2
	st.TotalPages = 3

	out := ansi.Strip(r.Render(st))
	assert.Contains(t, out, "page 2 of 3")

	st.Total = 2
	out = ansi.Strip(r.Render(st))
	assert.NotContains(t, out, "page 2 of")
}

func TestRenderFooter(t *testing.T) {
	r := NewRenderer(200)
	st := baseState()
	st.HelpLine = "? help"
	out := ansi.Strip(r.Render(st))
	lines := strings.Split(strings.TrimRight(out, " \n"), "\n")
	assert.Contains(t, lines[len(lines)-1], "? help")

	st.StatusMessage = "document not found"
	st.StatusIsError = true
	out = ansi.Strip(r.Render(st))
	assert.Contains(t, out, "document not found")
	assert.NotContains(t, out, "? help")
}

func TestRenderDocumentOverlay(t *testing.T) {
	r := NewRenderer(200)
	doc := &domain.Document{
		ID: "doc-0",
		Source: domain.DocumentSource{
			Title:    "Paper 0",
			Authors:  []string{"Ann", "Bob"},
			Year:     year(2020),
			Abstract: "An abstract",
			FullText: "Full body text",
		},
	}

	st := baseState()
	st.LastQuery = "paper"
	st.Results = sampleResults(1)
	st.Total = 1
	st.ShowDocument = true
	st.DocumentTitle = doc.Source.Title
	st.DocumentView = r.Documents().RenderDocument(doc, 60)

	out := ansi.Strip(r.Render(st))
	assert.Contains(t, out, "Authors: Ann, Bob")
	assert.Contains(t, out, "Year: 2020")
	assert.Contains(t, out, "Full body text")

	st.ShowDocument = false
	out = ansi.Strip(r.Render(st))
	assert.NotContains(t, out, "Authors:")
}

func TestPlainDocument(t *testing.T) {
	doc := &domain.Document{Source: domain.DocumentSource{
		Title:    "T",
		Authors:  []string{"A"},
		Abstract: "abs",
		FullText: "body",
	}}
	out := PlainDocument(doc, 20)
	assert.Contains(t, out, "T\nAuthors: A\nYear: \n")
	assert.Contains(t, out, "abs")
	assert.Contains(t, out, "body")
	assert.Equal(t, "", PlainDocument(nil, 20))
}
