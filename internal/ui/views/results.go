package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docsearch/internal/domain"
	"docsearch/internal/ui/logic"
)

// maxSnippetLines bounds the body of a card so every card has a known height
const maxSnippetLines = 3

// CardHeight is the number of lines one card takes, including the gap after it
const CardHeight = 2 + maxSnippetLines + 1

// CardRenderer handles rendering of result cards
type CardRenderer struct {
	styles        *Styles
	snippetLength int
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles, snippetLength int) *CardRenderer {
	if snippetLength <= 0 {
		snippetLength = logic.DefaultSnippetLength
	}
	return &CardRenderer{
		styles:        styles,
		snippetLength: snippetLength,
	}
}

// RenderCard renders one result as a title line, a subtitle line and a snippet
func (c *CardRenderer) RenderCard(r domain.ResultSummary, isSelected bool, width int) string {
	if width <= 0 {
		width = 80
	}
	bodyWidth := width - 2
	if bodyWidth < 10 {
		bodyWidth = 10
	}

	marker := "  "
	titleStyle := c.styles.CardTitle
	if isSelected {
		marker = c.styles.CardMarker.Render("▌ ")
		titleStyle = titleStyle.Underline(true)
	}

	title := c.renderFragment(logic.CardTitle(r), titleStyle)
	subtitle := c.styles.CardSubtitle.Render(logic.CardSubtitle(r))

	snippet := c.renderFragment(logic.CardSnippet(r, c.snippetLength), c.styles.CardBody)
	body := lipgloss.NewStyle().Width(bodyWidth).MaxHeight(maxSnippetLines).Render(snippet)

	var b strings.Builder
	b.WriteString(marker + title)
	b.WriteString("\n")
	b.WriteString(marker + subtitle)
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("\n")
		b.WriteString(marker + line)
	}
	return b.String()
}

// renderFragment styles a highlight fragment, emphasizing the <em> parts
func (c *CardRenderer) renderFragment(fragment string, base lipgloss.Style) string {
	var b strings.Builder
	for _, seg := range logic.SplitHighlight(fragment) {
		if seg.Matched {
			b.WriteString(c.styles.Match.Inherit(base).Render(seg.Text))
			continue
		}
		b.WriteString(base.Render(seg.Text))
	}
	return b.String()
}
