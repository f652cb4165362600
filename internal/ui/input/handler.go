package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/ui/input/modes"
	"docsearch/internal/ui/input/types"
)

// Handler routes key presses to the handler of the current mode
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // search bar, shared by text modes
}

// New creates a handler that starts with the search bar focused
func New() *Handler {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search documents..."
	ti.CharLimit = 256

	h := &Handler{
		currentMode: types.ModeSearch,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeDocument] = modes.NewDocumentMode()
	h.modes[types.ModeHelp] = modes.NewHelpMode()

	h.textInput.Focus()
	return h
}

// HandleKey feeds msg to the current mode and applies any mode changes it asks for.
// ChangeModeAction is consumed here; every other action is returned to the caller.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
			continue
		}
		allActions = append(allActions, action)
	}

	// Keys a text mode did not handle go to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// switchMode runs the Exit and Enter hooks around a mode change
func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// ModeName returns the display name of the active mode
func (h *Handler) ModeName() string {
	if handler := h.modes[h.currentMode]; handler != nil {
		return handler.Name()
	}
	return ""
}

// TextInput returns the search bar model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetText replaces the search bar text
func (h *Handler) SetText(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

// Text returns the search bar text
func (h *Handler) Text() string {
	return h.textInput.Value()
}

// RegisterMode installs or replaces the handler for mode
func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// ChangeMode switches modes from outside a key press, e.g. when a document arrives
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	return h.switchMode(mode, ctx)
}

// Update handles non-keyboard messages for the text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
