package viewmodels

import (
	"docsearch/internal/ui/state"
	"docsearch/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	width  int
	height int

	searchInput  string
	spinner      string
	helpLine     string
	helpContent  string
	documentView string
	statusError  bool
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState) *ViewModel {
	return &ViewModel{
		state: appState,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetSearchInput sets the rendered search bar
func (vm *ViewModel) SetSearchInput(view string) {
	vm.searchInput = view
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetHelp sets the footer key help and the full help popup content
func (vm *ViewModel) SetHelp(line, content string) {
	vm.helpLine = line
	vm.helpContent = content
}

// SetDocumentView sets the rendered document viewport
func (vm *ViewModel) SetDocumentView(view string) {
	vm.documentView = view
}

// SetStatusError marks the status message as an error
func (vm *ViewModel) SetStatusError(isError bool) {
	vm.statusError = isError
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:           vm.width,
		Height:          vm.height,
		SearchInput:     vm.searchInput,
		Searching:       vm.state.Searching,
		Spinner:         vm.spinner,
		LastQuery:       vm.state.LastQuery,
		Results:         vm.state.Results,
		Total:           vm.state.Total,
		ElapsedMs:       vm.state.ElapsedMs,
		Suggestion:      vm.state.Suggestion,
		Page:            vm.state.Page,
		TotalPages:      vm.state.TotalPages(),
		PageSize:        vm.state.PageSize,
		SelectedIndex:   vm.state.SelectedIndex,
		ViewportOffset:  vm.state.ViewportOffset,
		ViewportHeight:  vm.state.ViewportHeight,
		ShowDocument:    vm.state.ShowDocument && vm.state.Document != nil,
		LoadingDocument: vm.state.LoadingDocument,
		ShowHelp:        vm.state.ShowHelp,
		HelpContent:     vm.helpContent,
		HelpLine:        vm.helpLine,
		StatusMessage:   vm.state.StatusMessage,
		StatusIsError:   vm.statusError,
	}
	if vs.ShowDocument {
		vs.DocumentTitle = vm.state.Document.Source.Title
		vs.DocumentView = vm.documentView
	}
	return vs
}
