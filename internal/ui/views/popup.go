package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
	gray   lipgloss.Style
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
		gray:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// RenderPopupOverlay centers an already styled popup on top of main content.
// The main content is greyed out except for lines containing keep.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, styledPopup, keep string, height, width int) string {
	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLayer := lipgloss.NewLayer(pr.desaturateKeeping(mainContent, keep))
	modalLayer := lipgloss.NewLayer(styledPopup).X(x).Y(y).Z(1)

	return lipgloss.NewCanvas(baseLayer, modalLayer).Render()
}

// desaturateKeeping turns everything gray except lines containing keep
func (pr *PopupRenderer) desaturateKeeping(s, keep string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		plain := ansi.Strip(line)
		if keep != "" && strings.Contains(plain, keep) {
			continue
		}
		lines[i] = pr.gray.Render(plain)
	}
	return strings.Join(lines, "\n")
}
