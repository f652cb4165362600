package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docsearch/internal/domain"
	"docsearch/internal/ui/logic"
)

// DocumentRenderer renders the body of the document overlay
type DocumentRenderer struct {
	styles *Styles
}

// NewDocumentRenderer creates a new document renderer
func NewDocumentRenderer(styles *Styles) *DocumentRenderer {
	return &DocumentRenderer{styles: styles}
}

// RenderDocument lays out title, authors, year, abstract and full text
// for a viewport of the given width.
func (d *DocumentRenderer) RenderDocument(doc *domain.Document, width int) string {
	if doc == nil {
		return ""
	}
	if width < 20 {
		width = 20
	}
	wrap := lipgloss.NewStyle().Width(width)
	rule := d.styles.Rule.Render(strings.Repeat("─", width))
	src := doc.Source

	var b strings.Builder
	b.WriteString(wrap.Render(d.styles.DocTitle.Render(src.Title)))
	b.WriteString("\n")
	b.WriteString(d.styles.DocLabel.Render("Authors: ") + logic.JoinAuthors(src.Authors))
	b.WriteString("\n")
	b.WriteString(d.styles.DocLabel.Render("Year: ") + src.YearString())
	if src.URL != "" {
		b.WriteString("\n")
		b.WriteString(d.styles.DocLabel.Render("URL: ") + src.URL)
	}
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(wrap.Render(src.Abstract))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(wrap.Render(src.FullText))
	return b.String()
}

// PlainDocument renders a document as uncolored text, used by the pager
// and the non-interactive CLI.
func PlainDocument(doc *domain.Document, width int) string {
	if doc == nil {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	wrap := lipgloss.NewStyle().Width(width)
	rule := strings.Repeat("-", width)
	src := doc.Source

	var b strings.Builder
	b.WriteString(src.Title + "\n")
	b.WriteString("Authors: " + logic.JoinAuthors(src.Authors) + "\n")
	b.WriteString("Year: " + src.YearString() + "\n")
	if src.URL != "" {
		b.WriteString("URL: " + src.URL + "\n")
	}
	b.WriteString(rule + "\n")
	b.WriteString(wrap.Render(src.Abstract) + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(wrap.Render(src.FullText) + "\n")
	return b.String()
}
