package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"docsearch/internal/api"
	"docsearch/internal/domain"
	"docsearch/internal/ui/logic"
	"docsearch/internal/ui/views"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q: want text or json", format)
	}
}

// searchOutput is the JSON shape printed by `docsearch search --format json`
type searchOutput struct {
	Query      string                 `json:"query"`
	Page       int                    `json:"page"`
	Size       int                    `json:"size"`
	Total      int                    `json:"total"`
	ElapsedMs  int64                  `json:"elapsed_ms"`
	Suggestion string                 `json:"suggestion,omitempty"`
	Results    []domain.ResultSummary `json:"results"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// writeSearchText prints a page of results with the same wording as the interactive UI
func writeSearchText(w io.Writer, q domain.SearchQuery, resp *api.SearchResponse, elapsed time.Duration, snippetLength int) error {
	var b strings.Builder

	b.WriteString(logic.StatsLine(resp.Total, elapsed.Milliseconds(), q.Text))
	b.WriteString("\n")
	kind := logic.ClassifySuggestion(resp.Suggestion, q.Text, resp.Total)
	if kind != logic.SuggestionNone {
		b.WriteString(logic.SuggestionText(kind, resp.Suggestion))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(resp.Results) == 0 {
		b.WriteString(logic.NoResultsText)
		b.WriteString("\n")
	}
	for i, r := range resp.Results {
		n := (q.Page-1)*q.Size + i + 1
		fmt.Fprintf(&b, "%d. %s\n", n, logic.StripHighlight(logic.CardTitle(r)))
		fmt.Fprintf(&b, "   %s\n", logic.CardSubtitle(r))
		fmt.Fprintf(&b, "   %s\n", logic.StripHighlight(logic.CardSnippet(r, snippetLength)))
		fmt.Fprintf(&b, "   id: %s\n\n", r.ID)
	}

	if resp.Total > q.Size {
		b.WriteString(logic.PageLine(q.Page, domain.PageCount(resp.Total, q.Size)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeDocumentText prints a document the way the pager shows it
func writeDocumentText(w io.Writer, doc *domain.Document) error {
	_, err := io.WriteString(w, views.PlainDocument(doc, 80))
	return err
}
