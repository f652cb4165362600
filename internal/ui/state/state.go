package state

import (
	"time"

	"docsearch/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Query state
	Query     string // text currently in the search bar
	LastQuery string // last submitted query
	Page      int    // page of the last submitted query, 1-based
	PageSize  int

	// Last response
	Results    []domain.ResultSummary
	Total      int
	ElapsedMs  int64
	Suggestion string

	// Selection state
	SelectedIndex int    // highlighted result card
	SelectedID    string // id of the document requested or shown in the overlay

	// Detail overlay
	Document        *domain.Document
	ShowDocument    bool
	LoadingDocument bool

	// Request tracking
	Searching     bool
	PendingSearch uint64 // sequence number of the outstanding search
	nextSeq       uint64

	// UI state
	ViewportOffset int // first visible result card
	ViewportHeight int // number of result cards that fit on screen
	ShowHelp       bool
	StatusMessage  string
}

// NewAppState creates a new application state
func NewAppState(pageSize int) *AppState {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &AppState{
		Page:           1,
		PageSize:       pageSize,
		Results:        []domain.ResultSummary{},
		ViewportHeight: 4,
	}
}

// BeginSearch records a new submission and returns the query to send.
// The previous suggestion is cleared immediately.
func (s *AppState) BeginSearch(text string, page int) (uint64, domain.SearchQuery) {
	if page < 1 {
		page = 1
	}
	s.nextSeq++
	s.PendingSearch = s.nextSeq
	s.Searching = true
	s.LastQuery = text
	s.Page = page
	s.Suggestion = ""
	return s.PendingSearch, domain.SearchQuery{Text: text, Page: page, Size: s.PageSize}
}

// IsCurrent reports whether seq belongs to the outstanding search
func (s *AppState) IsCurrent(seq uint64) bool {
	return s.Searching && seq == s.PendingSearch
}

// ApplyPage stores a completed page of results
func (s *AppState) ApplyPage(page domain.SearchPage) {
	s.Searching = false
	s.Results = page.Results
	if s.Results == nil {
		s.Results = []domain.ResultSummary{}
	}
	s.Total = page.Total
	s.ElapsedMs = page.Elapsed.Round(time.Millisecond).Milliseconds()
	s.Suggestion = page.Suggestion
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// ResetResults clears the result set after a failed search
func (s *AppState) ResetResults() {
	s.Searching = false
	s.Results = []domain.ResultSummary{}
	s.Total = 0
	s.ElapsedMs = 0
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// TotalPages returns the number of pages for the current total
func (s *AppState) TotalPages() int {
	return domain.PageCount(s.Total, s.PageSize)
}

// HasNextPage reports whether another page exists after the current one
func (s *AppState) HasNextPage() bool {
	return s.Total > 0 && s.Page < s.TotalPages()
}

// HasPrevPage reports whether a page exists before the current one
func (s *AppState) HasPrevPage() bool {
	return s.Page > 1
}

// SelectedResult returns the highlighted result, if any
func (s *AppState) SelectedResult() (domain.ResultSummary, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Results) {
		return domain.ResultSummary{}, false
	}
	return s.Results[s.SelectedIndex], true
}

// MoveSelection moves the highlighted card by delta, clamped to the result list.
// Moving away cancels interest in a document that has not arrived yet.
func (s *AppState) MoveSelection(delta int) {
	if len(s.Results) == 0 {
		s.SelectedIndex = 0
		return
	}
	prev := s.SelectedIndex
	s.SelectedIndex += delta
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex >= len(s.Results) {
		s.SelectedIndex = len(s.Results) - 1
	}
	// a document still loading for another card is dropped
	if s.SelectedIndex != prev && s.LoadingDocument {
		s.SelectedID = ""
		s.LoadingDocument = false
	}
	s.EnsureSelectedVisible()
}

// EnsureSelectedVisible scrolls the card viewport so the selection is on screen
func (s *AppState) EnsureSelectedVisible() {
	height := s.ViewportHeight
	if height < 1 {
		height = 1
	}
	if s.SelectedIndex < s.ViewportOffset {
		s.ViewportOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ViewportOffset+height {
		s.ViewportOffset = s.SelectedIndex - height + 1
	}
}

// RequestDocument marks id as the selected document while it loads
func (s *AppState) RequestDocument(id string) {
	s.SelectedID = id
	s.LoadingDocument = true
	s.ShowDocument = false
	s.Document = nil
}

// ShowLoadedDocument opens the overlay if doc is the one still selected
func (s *AppState) ShowLoadedDocument(doc domain.Document) bool {
	if doc.ID != s.SelectedID {
		return false
	}
	s.LoadingDocument = false
	s.Document = &doc
	s.ShowDocument = true
	return true
}

// CloseDocument hides the overlay and clears the selected id
func (s *AppState) CloseDocument() {
	s.SelectedID = ""
	s.LoadingDocument = false
	s.ShowDocument = false
	s.Document = nil
}
