package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/ui/input/types"
)

// NormalMode browses the result cards
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		if ctx.CurrentIndex() == 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
		}
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyRight, tea.KeyPgDown:
		if ctx.HasNextPage() {
			return []types.Action{types.NextPageAction{}}, true
		}
		return nil, true

	case tea.KeyLeft, tea.KeyPgUp:
		if ctx.HasPrevPage() {
			return []types.Action{types.PrevPageAction{}}, true
		}
		return nil, true

	case tea.KeyTab:
		if ctx.HasSuggestion() {
			return []types.Action{types.AcceptSuggestionAction{}}, true
		}
		return nil, true

	case tea.KeyEnter:
		if ctx.ResultCount() > 0 {
			return []types.Action{types.OpenDocumentAction{Index: ctx.CurrentIndex()}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		if ctx.CurrentIndex() == 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
		}
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "n", "l":
		if ctx.HasNextPage() {
			return []types.Action{types.NextPageAction{}}, true
		}
		return nil, true

	case "p", "h":
		if ctx.HasPrevPage() {
			return []types.Action{types.PrevPageAction{}}, true
		}
		return nil, true

	case "/", "i":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "?":
		return []types.Action{
			types.ToggleHelpAction{},
			types.ChangeModeAction{Mode: types.ModeHelp},
		}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
