package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog/log"

	"docsearch/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSearchRequested   = domain.EventSearchRequested
	EventSearchCompleted   = domain.EventSearchCompleted
	EventSearchFailed      = domain.EventSearchFailed
	EventDocumentRequested = domain.EventDocumentRequested
	EventDocumentLoaded    = domain.EventDocumentLoaded
	EventDocumentFailed    = domain.EventDocumentFailed
)

// Re-export domain event types
type SearchRequestedEvent = domain.SearchRequestedEvent
type SearchCompletedEvent = domain.SearchCompletedEvent
type SearchFailedEvent = domain.SearchFailedEvent
type DocumentRequestedEvent = domain.DocumentRequestedEvent
type DocumentLoadedEvent = domain.DocumentLoadedEvent
type DocumentFailedEvent = domain.DocumentFailedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// Bus is the channel-backed EventBus
type Bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus and starts its dispatcher
func New() *Bus {
	b := &Bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. Events are dropped when the queue is full.
func (b *Bus) Publish(event DomainEvent) {
	log.Debug().Str("event", string(event.Type())).Msg("eventbus: publish")

	select {
	case b.eventChan <- event:
	default:
		log.Warn().Str("event", string(event.Type())).Msg("eventbus: channel full, dropping event")
	}
}

// Subscribe registers handler for eventType and returns an unsubscribe function
func (b *Bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Queued events that were not dispatched yet are discarded.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Error().
								Str("event", string(eventType)).
								Interface("panic", r).
								Bytes("stack", debug.Stack()).
								Msg("eventbus: handler panic")
						}
					}()
					h(event)
				}(s.handler, event.Type())
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
