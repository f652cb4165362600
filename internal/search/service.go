// Package search runs the backend requests the UI asks for over the event bus.
package search

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"docsearch/internal/api"
	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
)

const defaultRequestTimeout = 30 * time.Second

// Service answers SearchRequested and DocumentRequested events
type Service struct {
	bus      eventbus.EventBus
	searcher api.Searcher
	docs     api.DocumentFetcher
	timeout  time.Duration
	now      func() time.Time
	unsubs   []func()
}

// NewService creates the service and subscribes it to the bus
func NewService(bus eventbus.EventBus, searcher api.Searcher, docs api.DocumentFetcher, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	s := &Service{
		bus:      bus,
		searcher: searcher,
		docs:     docs,
		timeout:  timeout,
		now:      time.Now,
	}

	s.unsubs = append(s.unsubs,
		bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.SearchRequestedEvent); ok {
				ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
				defer cancel()
				s.bus.Publish(s.RunSearch(ctx, event))
			}
		}),
		bus.Subscribe(eventbus.EventDocumentRequested, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.DocumentRequestedEvent); ok {
				ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
				defer cancel()
				s.bus.Publish(s.LoadDocument(ctx, event.ID))
			}
		}),
	)

	return s
}

// RunSearch performs one search and returns the completion or failure event
func (s *Service) RunSearch(ctx context.Context, req eventbus.SearchRequestedEvent) eventbus.DomainEvent {
	start := s.now()
	resp, err := s.searcher.Search(ctx, req.Query)
	elapsed := s.now().Sub(start)

	if err != nil {
		log.Error().Err(err).
			Str("query", req.Query.Text).
			Int("page", req.Query.Page).
			Msg("search failed")
		return eventbus.SearchFailedEvent{Seq: req.Seq, Query: req.Query, Err: err}
	}

	log.Info().
		Str("query", req.Query.Text).
		Int("page", req.Query.Page).
		Int("total", resp.Total).
		Int("hits", len(resp.Results)).
		Dur("elapsed", elapsed).
		Msg("search completed")

	return eventbus.SearchCompletedEvent{
		Seq: req.Seq,
		Page: domain.SearchPage{
			Query:      req.Query,
			Results:    resp.Results,
			Total:      resp.Total,
			Suggestion: resp.Suggestion,
			Elapsed:    elapsed,
		},
	}
}

// LoadDocument fetches one document and returns the loaded or failed event
func (s *Service) LoadDocument(ctx context.Context, id string) eventbus.DomainEvent {
	doc, err := s.docs.Document(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("document fetch failed")
		return eventbus.DocumentFailedEvent{ID: id, Err: err}
	}
	log.Debug().Str("id", id).Msg("document loaded")
	return eventbus.DocumentLoadedEvent{Document: *doc}
}

// Close unsubscribes the service from the bus
func (s *Service) Close() {
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
}
