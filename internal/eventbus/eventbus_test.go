package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsearch/internal/domain"
)

func TestBus_DeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DocumentRequestedEvent, 1)
	b.Subscribe(EventDocumentRequested, func(e DomainEvent) {
		if ev, ok := e.(DocumentRequestedEvent); ok {
			got <- ev
		}
	})

	b.Publish(DocumentRequestedEvent{ID: "doc-1"})

	select {
	case ev := <-got:
		assert.Equal(t, "doc-1", ev.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestBus_OnlyMatchingTypeIsDelivered(t *testing.T) {
	b := New()
	defer b.Close()

	var calls atomic.Int32
	b.Subscribe(EventSearchCompleted, func(DomainEvent) { calls.Add(1) })

	done := make(chan struct{})
	b.Subscribe(EventSearchFailed, func(DomainEvent) { close(done) })

	b.Publish(SearchFailedEvent{Query: domain.SearchQuery{Text: "x"}})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	var removed atomic.Int32
	unsubscribe := b.Subscribe(EventDocumentLoaded, func(DomainEvent) { removed.Add(1) })
	unsubscribe()

	done := make(chan struct{})
	b.Subscribe(EventDocumentLoaded, func(DomainEvent) { close(done) })

	b.Publish(DocumentLoadedEvent{})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
	require.Equal(t, int32(0), removed.Load())
}

func TestBus_HandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New()
	defer b.Close()

	b.Subscribe(EventDocumentFailed, func(DomainEvent) { panic("boom") })

	done := make(chan struct{}, 2)
	b.Subscribe(EventDocumentFailed, func(DomainEvent) { done <- struct{}{} })

	b.Publish(DocumentFailedEvent{ID: "a"})
	b.Publish(DocumentFailedEvent{ID: "b"})

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("dispatch stopped after a panicking handler")
		}
	}
}

func TestBus_CloseIsIdempotent(t *testing.T) {
	b := New()
	b.Close()
	b.Close()
}
