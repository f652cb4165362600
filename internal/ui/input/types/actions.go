package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type NextPageAction struct{}

func (a NextPageAction) Type() string { return "next_page" }

type PrevPageAction struct{}

func (a PrevPageAction) Type() string { return "prev_page" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search actions
type AcceptSuggestionAction struct{}

func (a AcceptSuggestionAction) Type() string { return "accept_suggestion" }

// Document actions
type OpenDocumentAction struct {
	Index int
}

func (a OpenDocumentAction) Type() string { return "open_document" }

type CloseDocumentAction struct{}

func (a CloseDocumentAction) Type() string { return "close_document" }

type ScrollDocumentAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "top", "bottom"
}

func (a ScrollDocumentAction) Type() string { return "scroll_document" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
