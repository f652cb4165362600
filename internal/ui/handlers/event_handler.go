package handlers

import (
	"errors"

	"github.com/rs/zerolog/log"

	"docsearch/internal/api"
	"docsearch/internal/eventbus"
	"docsearch/internal/ui/state"
)

// Result tells the model what changed after an event was applied
type Result int

const (
	ResultNone Result = iota
	ResultSearchApplied
	ResultDocumentShown
	ResultDocumentFailed
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent applies a completion event to the state
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) Result {
	switch e := event.(type) {
	case eventbus.SearchCompletedEvent:
		if !h.state.IsCurrent(e.Seq) {
			log.Debug().Uint64("seq", e.Seq).Uint64("pending", h.state.PendingSearch).Msg("dropping stale search result")
			return ResultNone
		}
		h.state.ApplyPage(e.Page)
		return ResultSearchApplied

	case eventbus.SearchFailedEvent:
		if !h.state.IsCurrent(e.Seq) {
			return ResultNone
		}
		log.Debug().Err(e.Err).Uint64("seq", e.Seq).Msg("clearing results after failed search")
		h.state.ResetResults()
		return ResultSearchApplied

	case eventbus.DocumentLoadedEvent:
		if !h.state.ShowLoadedDocument(e.Document) {
			log.Debug().Str("id", e.Document.ID).Msg("dropping document that is no longer selected")
			return ResultNone
		}
		return ResultDocumentShown

	case eventbus.DocumentFailedEvent:
		if e.ID != h.state.SelectedID {
			return ResultNone
		}
		log.Debug().Err(e.Err).Str("id", e.ID).Msg("closing document after failed fetch")
		h.state.CloseDocument()
		if errors.Is(e.Err, api.ErrNotFound) {
			h.state.StatusMessage = "Document not found"
		} else {
			h.state.StatusMessage = "Could not load document"
		}
		return ResultDocumentFailed
	}
	return ResultNone
}
