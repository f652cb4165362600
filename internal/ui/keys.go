package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "docsearch/internal/ui/input/types"
)

// KeyMap lists the key bindings shown in help
type KeyMap struct {
	Submit     key.Binding
	Suggestion key.Binding
	Results    key.Binding
	Browse     key.Binding
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	Search     key.Binding
	Close      key.Binding
	Scroll     key.Binding
	Pager      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the bindings the input modes implement
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Suggestion: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "use suggestion")),
		Results:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "results")),
		Browse:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "browse")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		NextPage:   key.NewBinding(key.WithKeys("n", "l", "right", "pgdown"), key.WithHelp("n/→", "next page")),
		PrevPage:   key.NewBinding(key.WithKeys("p", "h", "left", "pgup"), key.WithHelp("p/←", "prev page")),
		Search:     key.NewBinding(key.WithKeys("/", "i"), key.WithHelp("/", "edit query")),
		Close:      key.NewBinding(key.WithKeys("esc", "q", "enter"), key.WithHelp("esc", "close")),
		Scroll:     key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
		Pager:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in pager")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the result list bindings
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.NextPage, k.PrevPage, k.Search, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped by what they act on
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Suggestion, k.Results, k.Browse},
		{k.Up, k.Down, k.Open, k.NextPage, k.PrevPage, k.Search},
		{k.Close, k.Scroll, k.Pager, k.Help, k.Quit},
	}
}

// ShortHelpFor returns the footer bindings for an input mode
func (k KeyMap) ShortHelpFor(mode inputtypes.Mode) []key.Binding {
	switch mode {
	case inputtypes.ModeSearch:
		return []key.Binding{k.Submit, k.Suggestion, k.Results, k.Browse}
	case inputtypes.ModeDocument:
		return []key.Binding{k.Close, k.Scroll, k.Pager}
	case inputtypes.ModeHelp:
		return []key.Binding{k.Close}
	default:
		return k.ShortHelp()
	}
}
