package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docsearch/internal/domain"
	"docsearch/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	SearchInput string // rendered text input
	Searching   bool
	Spinner     string // rendered spinner frame

	LastQuery  string
	Results    []domain.ResultSummary
	Total      int
	ElapsedMs  int64
	Suggestion string
	Page       int
	TotalPages int
	PageSize   int

	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	ShowDocument    bool
	DocumentTitle   string
	DocumentView    string // rendered document viewport
	LoadingDocument bool

	ShowHelp      bool
	HelpContent   string
	HelpLine      string // short key help for the footer
	StatusMessage string
	StatusIsError bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cardRender  *CardRenderer
	docRender   *DocumentRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(snippetLength int) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cardRender:  NewCardRenderer(styles, snippetLength),
		docRender:   NewDocumentRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the styles used by the renderer
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Documents returns the renderer for the document overlay body
func (r *Renderer) Documents() *DocumentRenderer {
	return r.docRender
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	// Main has horizontal padding of 2 on each side
	innerWidth := termWidth - 4

	content := &strings.Builder{}
	content.WriteString(r.renderTitleLine(state, innerWidth))
	content.WriteString("\n")

	content.WriteString(r.styles.SearchBar.Width(innerWidth - 2).Render(state.SearchInput))
	content.WriteString("\n")

	if state.LastQuery != "" {
		content.WriteString(r.styles.Stats.Render(logic.StatsLine(state.Total, state.ElapsedMs, state.LastQuery)))
		content.WriteString("\n")
	}

	kind := logic.ClassifySuggestion(state.Suggestion, state.LastQuery, state.Total)
	if kind != logic.SuggestionNone {
		content.WriteString(r.renderSuggestion(kind, state.Suggestion))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	switch {
	case state.Searching && len(state.Results) == 0:
		content.WriteString(r.styles.Dim.Render("Searching..."))
	case len(state.Results) == 0:
		content.WriteString(r.styles.Dim.Render(logic.NoResultsText))
	default:
		content.WriteString(r.renderResultList(state, innerWidth))
	}

	if state.Total > state.PageSize && state.PageSize > 0 {
		content.WriteString("\n\n")
		content.WriteString(r.styles.Status.Render(logic.PageLine(state.Page, state.TotalPages)))
	}

	r.writeFooter(content, state)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowDocument && state.DocumentView != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, r.styles.DocBox.Render(state.DocumentView), state.DocumentTitle, state.Height, state.Width)
	}

	if state.ShowHelp && state.HelpContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, r.styles.InfoBox.Render(state.HelpContent), "", state.Height, state.Width)
	}

	return finalContent
}

// renderTitleLine renders the logo with right-aligned activity indicators
func (r *Renderer) renderTitleLine(state ViewState, width int) string {
	logo := r.styles.Title.Render("docsearch")

	indicators := []string{}
	if state.Searching {
		indicators = append(indicators, fmt.Sprintf("%s Searching", state.Spinner))
	}
	if state.LoadingDocument {
		indicators = append(indicators, fmt.Sprintf("%s Loading document", state.Spinner))
	}
	if len(indicators) == 0 {
		return logo
	}

	right := r.styles.Dim.Render(strings.Join(indicators, " | "))
	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

// renderSuggestion renders the suggestion line with the suggested query emphasized
func (r *Renderer) renderSuggestion(kind logic.SuggestionKind, suggestion string) string {
	switch kind {
	case logic.SuggestionDidYouMean:
		return r.styles.Suggestion.Render("Did you mean ") +
			r.styles.SuggestionHit.Render(suggestion) +
			r.styles.Suggestion.Render("?") +
			r.styles.Dim.Render("  (tab to search)")
	case logic.SuggestionSearchInstead:
		return r.styles.Suggestion.Render("Or search instead for ") +
			r.styles.SuggestionHit.Render(suggestion) +
			r.styles.Dim.Render("  (tab to search)")
	}
	return ""
}

// renderResultList renders the visible result cards with scroll indicators
func (r *Renderer) renderResultList(state ViewState, width int) string {
	height := state.ViewportHeight
	if height < 1 {
		height = 1
	}
	start := state.ViewportOffset
	if start < 0 || start >= len(state.Results) {
		start = 0
	}
	end := start + height
	if end > len(state.Results) {
		end = len(state.Results)
	}

	var lines []string
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, r.cardRender.RenderCard(state.Results[i], i == state.SelectedIndex, width))
	}
	lines = append(lines, strings.Join(cards, "\n\n"))

	if below := len(state.Results) - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return strings.Join(lines, "\n")
}

// writeFooter pads the content so the footer sits on the last line
func (r *Renderer) writeFooter(content *strings.Builder, state ViewState) {
	footer := state.HelpLine
	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		footer = style.Render(state.StatusMessage)
	}
	if footer == "" || state.ShowHelp || state.ShowDocument {
		return
	}

	currentLines := strings.Count(content.String(), "\n") + 1
	// Main has one line of padding at the top and bottom
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if padding := availableLines - currentLines - 1; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render(footer))
}
