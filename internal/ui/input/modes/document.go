package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/ui/input/types"
)

// DocumentMode is active while the document overlay is shown
type DocumentMode struct{}

func NewDocumentMode() *DocumentMode {
	return &DocumentMode{}
}

func (m *DocumentMode) Name() string {
	return "document"
}

func (m *DocumentMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DocumentMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DocumentMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q", "enter":
		return []types.Action{
			types.CloseDocumentAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "o":
		return []types.Action{types.OpenPagerAction{}}, true
	case "up", "k":
		return []types.Action{types.ScrollDocumentAction{Direction: "up"}}, true
	case "down", "j":
		return []types.Action{types.ScrollDocumentAction{Direction: "down"}}, true
	case "pgup", "b":
		return []types.Action{types.ScrollDocumentAction{Direction: "pageup"}}, true
	case "pgdown", " ", "f":
		return []types.Action{types.ScrollDocumentAction{Direction: "pagedown"}}, true
	case "home", "g":
		return []types.Action{types.ScrollDocumentAction{Direction: "top"}}, true
	case "end", "G":
		return []types.Action{types.ScrollDocumentAction{Direction: "bottom"}}, true
	}
	// Swallow everything else so keys don't leak to the result list
	return nil, true
}
