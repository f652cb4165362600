package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"docsearch/internal/config"
	"docsearch/internal/eventbus"
	"docsearch/internal/ui/handlers"
	"docsearch/internal/ui/input"
	inputtypes "docsearch/internal/ui/input/types"
	"docsearch/internal/ui/state"
	"docsearch/internal/ui/viewmodels"
	"docsearch/internal/ui/views"
)

const (
	// lines used by everything above and below the result cards
	chromeHeight = 15
	// document overlay border, padding and key hint
	overlayChrome = 6
	maxDocWidth   = 100
	statusTimeout = 3 * time.Second
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	// UI-specific state not in AppState
	width   int
	height  int
	help    help.Model
	keys    KeyMap
	spinner spinner.Model
	docView viewport.Model

	// bumped for every status message so older clear timers are ignored
	statusSeq uint64

	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	appState := state.NewAppState(cfg.Search.PageSize)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		help:         help.New(),
		keys:         DefaultKeyMap(),
		spinner:      sp,
		docView:      viewport.New(0, 0),
		renderer:     views.NewRenderer(cfg.UI.SnippetLength),
		eventHandler: handlers.NewEventHandler(appState),
		viewModel:    viewmodels.NewViewModel(appState),
		inputHandler: input.New(),
	}
}

// State exposes the application state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		m.layoutDocument()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case spinner.TickMsg:
		if !m.state.Searching && !m.state.LoadingDocument {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerExitMsg:
		if msg.err != nil {
			log.Error().Err(msg.err).Str("id", msg.id).Msg("pager failed")
			return m, m.setStatus("Could not open pager", true)
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq != m.statusSeq {
			return m, nil
		}
		m.state.StatusMessage = ""
		m.viewModel.SetStatusError(false)
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// handleKey routes a key press through the input handler and runs the resulting actions
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctx := &input.ModelContext{State: m.state}
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	m.syncHelp()
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.state.Query = a.Text

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.state.Query = a.Text
			return m.submitSearch(a.Text, 1)
		}

	case inputtypes.CancelTextAction:
		// the query stays in the search bar

	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.MoveSelection(-1)
		case "down":
			m.state.MoveSelection(1)
		case "home":
			m.state.MoveSelection(-len(m.state.Results))
		case "end":
			m.state.MoveSelection(len(m.state.Results))
		}

	case inputtypes.NextPageAction:
		if m.state.HasNextPage() {
			return m.submitSearch(m.state.LastQuery, m.state.Page+1)
		}

	case inputtypes.PrevPageAction:
		if m.state.HasPrevPage() {
			return m.submitSearch(m.state.LastQuery, m.state.Page-1)
		}

	case inputtypes.AcceptSuggestionAction:
		suggestion := m.state.Suggestion
		if suggestion == "" {
			return nil
		}
		m.inputHandler.SetText(suggestion)
		m.state.Query = suggestion
		return m.submitSearch(suggestion, 1)

	case inputtypes.OpenDocumentAction:
		return m.openDocument(a.Index)

	case inputtypes.CloseDocumentAction:
		m.state.CloseDocument()
		m.docView.SetContent("")

	case inputtypes.ScrollDocumentAction:
		switch a.Direction {
		case "up":
			m.docView.LineUp(1)
		case "down":
			m.docView.LineDown(1)
		case "pageup":
			m.docView.ViewUp()
		case "pagedown":
			m.docView.ViewDown()
		case "top":
			m.docView.GotoTop()
		case "bottom":
			m.docView.GotoBottom()
		}

	case inputtypes.OpenPagerAction:
		if m.state.Document == nil {
			return nil
		}
		return openPager(m.state.Document.ID, views.PlainDocument(m.state.Document, m.pagerWidth()))

	case inputtypes.ToggleHelpAction:
		// visibility follows the help mode, see syncHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// submitSearch publishes a search for text at page
func (m *Model) submitSearch(text string, page int) tea.Cmd {
	seq, query := m.state.BeginSearch(text, page)
	log.Debug().Uint64("seq", seq).Str("query", query.Text).Int("page", query.Page).Msg("search requested")
	if m.bus != nil {
		m.bus.Publish(eventbus.SearchRequestedEvent{Seq: seq, Query: query})
	}
	return m.spinner.Tick
}

// openDocument requests the full document for the result at index
func (m *Model) openDocument(index int) tea.Cmd {
	if index < 0 || index >= len(m.state.Results) {
		return nil
	}
	id := m.state.Results[index].ID
	m.state.SelectedIndex = index
	m.state.RequestDocument(id)
	if m.bus != nil {
		m.bus.Publish(eventbus.DocumentRequestedEvent{ID: id})
	}
	return m.spinner.Tick
}

// handleEvent applies a domain event and syncs the input mode with the overlay
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	defer m.syncHelp()
	switch m.eventHandler.HandleEvent(event) {
	case handlers.ResultSearchApplied:
		m.state.EnsureSelectedVisible()
	case handlers.ResultDocumentShown:
		m.layoutDocument()
		m.docView.GotoTop()
		m.inputHandler.ChangeMode(inputtypes.ModeDocument, &input.ModelContext{State: m.state})
	case handlers.ResultDocumentFailed:
		return m.setStatus(m.state.StatusMessage, true)
	}
	return nil
}

// syncHelp shows the help popup exactly while the help mode is active
func (m *Model) syncHelp() {
	m.state.ShowHelp = m.inputHandler.CurrentMode() == inputtypes.ModeHelp
}

// setStatus shows a footer message that clears itself
func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.state.StatusMessage = message
	m.viewModel.SetStatusError(isError)
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// updateViewportHeight recalculates how many result cards fit on screen
func (m *Model) updateViewportHeight() {
	cards := (m.height - chromeHeight) / views.CardHeight
	if cards < 1 {
		cards = 1
	}
	m.state.ViewportHeight = cards
	m.state.EnsureSelectedVisible()
}

// layoutDocument sizes the document viewport and re-renders its content
func (m *Model) layoutDocument() {
	width := m.width - 10
	if width > maxDocWidth {
		width = maxDocWidth
	}
	if width < 20 {
		width = 20
	}
	height := m.height - overlayChrome
	if height < 3 {
		height = 3
	}
	m.docView.Width = width
	m.docView.Height = height
	if m.state.Document != nil {
		m.docView.SetContent(m.renderer.Documents().RenderDocument(m.state.Document, width))
	}
}

func (m *Model) pagerWidth() int {
	if m.width > 0 && m.width < maxDocWidth {
		return m.width
	}
	return maxDocWidth
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetSearchInput(m.inputHandler.TextInput().View())
	m.viewModel.SetSpinner(m.spinner.View())

	mode := m.inputHandler.CurrentMode()
	helpContent := ""
	if m.state.ShowHelp {
		helpContent = m.renderer.Styles().DocTitle.Render("docsearch keys") + "\n\n" + m.help.FullHelpView(m.keys.FullHelp())
	}
	m.viewModel.SetHelp(m.help.ShortHelpView(m.keys.ShortHelpFor(mode)), helpContent)

	if m.state.ShowDocument && m.state.Document != nil {
		var b strings.Builder
		b.WriteString(m.docView.View())
		b.WriteString("\n")
		b.WriteString(m.renderer.Styles().Dim.Render(m.help.ShortHelpView(m.keys.ShortHelpFor(inputtypes.ModeDocument))))
		m.viewModel.SetDocumentView(b.String())
	} else {
		m.viewModel.SetDocumentView("")
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}
