package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/ui/input/types"
)

// HelpMode is active while the key help popup is shown
type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "?", "esc", "q", "enter":
		return []types.Action{
			types.ToggleHelpAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, true
}
