package input

import (
	"docsearch/internal/ui/logic"
	"docsearch/internal/ui/state"
)

// ModelContext implements the Context interface over the application state
type ModelContext struct {
	State *state.AppState
}

// CurrentIndex returns the highlighted result index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// ResultCount returns the number of results on the current page
func (c *ModelContext) ResultCount() int {
	return len(c.State.Results)
}

// HasSuggestion reports whether a suggestion is on screen for the last query
func (c *ModelContext) HasSuggestion() bool {
	return logic.ClassifySuggestion(c.State.Suggestion, c.State.LastQuery, c.State.Total) != logic.SuggestionNone
}

// HasNextPage reports whether a later page exists
func (c *ModelContext) HasNextPage() bool {
	return c.State.HasNextPage()
}

// HasPrevPage reports whether an earlier page exists
func (c *ModelContext) HasPrevPage() bool {
	return c.State.HasPrevPage()
}
