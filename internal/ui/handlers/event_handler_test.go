package handlers

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsearch/internal/api"
	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
	"docsearch/internal/ui/state"
)

func page(ids ...string) domain.SearchPage {
	results := make([]domain.ResultSummary, len(ids))
	for i, id := range ids {
		results[i] = domain.ResultSummary{ID: id}
	}
	return domain.SearchPage{Results: results, Total: len(ids), Elapsed: 5 * time.Millisecond}
}

func TestSearchCompletedAppliesCurrentSeq(t *testing.T) {
	st := state.NewAppState(10)
	h := NewEventHandler(st)
	seq, _ := st.BeginSearch("germany", 1)

	res := h.HandleEvent(eventbus.SearchCompletedEvent{Seq: seq, Page: page("a", "b")})
	assert.Equal(t, ResultSearchApplied, res)
	assert.Len(t, st.Results, 2)
	assert.Equal(t, 2, st.Total)
	assert.Equal(t, int64(5), st.ElapsedMs)
	assert.False(t, st.Searching)
}

func TestSearchCompletedDropsStaleSeq(t *testing.T) {
	st := state.NewAppState(10)
	h := NewEventHandler(st)
	first, _ := st.BeginSearch("ger", 1)
	second, _ := st.BeginSearch("germany", 1)

	assert.Equal(t, ResultNone, h.HandleEvent(eventbus.SearchCompletedEvent{Seq: first, Page: page("old")}))
	assert.Empty(t, st.Results)
	assert.True(t, st.Searching)

	h.HandleEvent(eventbus.SearchCompletedEvent{Seq: second, Page: page("new")})
	require.Len(t, st.Results, 1)
	assert.Equal(t, "new", st.Results[0].ID)
}

func TestSearchFailedResetsResults(t *testing.T) {
	st := state.NewAppState(10)
	h := NewEventHandler(st)
	seq, _ := st.BeginSearch("germany", 1)
	h.HandleEvent(eventbus.SearchCompletedEvent{Seq: seq, Page: page("a")})

	seq, q := st.BeginSearch("france", 1)
	res := h.HandleEvent(eventbus.SearchFailedEvent{Seq: seq, Query: q, Err: errors.New("boom")})
	assert.Equal(t, ResultSearchApplied, res)
	assert.Empty(t, st.Results)
	assert.Zero(t, st.Total)
	assert.Zero(t, st.ElapsedMs)
	assert.Empty(t, st.StatusMessage)
}

func TestDocumentLoaded(t *testing.T) {
	st := state.NewAppState(10)
	h := NewEventHandler(st)
	st.RequestDocument("a")

	assert.Equal(t, ResultNone, h.HandleEvent(eventbus.DocumentLoadedEvent{Document: domain.Document{ID: "b"}}))
	assert.False(t, st.ShowDocument)

	assert.Equal(t, ResultDocumentShown, h.HandleEvent(eventbus.DocumentLoadedEvent{Document: domain.Document{ID: "a"}}))
	assert.True(t, st.ShowDocument)
	require.NotNil(t, st.Document)
	assert.Equal(t, "a", st.Document.ID)
}

func TestDocumentFailedLeavesOverlayHidden(t *testing.T) {
	st := state.NewAppState(10)
	h := NewEventHandler(st)
	st.RequestDocument("a")

	res := h.HandleEvent(eventbus.DocumentFailedEvent{ID: "a", Err: api.ErrNotFound})
	assert.Equal(t, ResultDocumentFailed, res)
	assert.False(t, st.ShowDocument)
	assert.False(t, st.LoadingDocument)
	assert.Empty(t, st.SelectedID)
	assert.Equal(t, "Document not found", st.StatusMessage)
}

func TestDocumentFailedForOtherID(t *testing.T) {
	st := state.NewAppState(10)
	h := NewEventHandler(st)
	st.RequestDocument("a")

	assert.Equal(t, ResultNone, h.HandleEvent(eventbus.DocumentFailedEvent{ID: "b", Err: errors.New("x")}))
	assert.True(t, st.LoadingDocument)
}
