package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/ui/input/types"
)

// SearchMode edits the query in the search bar
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyTab:
		if ctx.HasSuggestion() {
			return []types.Action{types.AcceptSuggestionAction{}}, true
		}
		return nil, true
	case tea.KeyDown:
		if ctx.ResultCount() > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
		}
		return nil, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
