package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested   EventType = "SearchRequested"
	EventSearchCompleted   EventType = "SearchCompleted"
	EventSearchFailed      EventType = "SearchFailed"
	EventDocumentRequested EventType = "DocumentRequested"
	EventDocumentLoaded    EventType = "DocumentLoaded"
	EventDocumentFailed    EventType = "DocumentFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent asks the search service to run a query.
// Seq identifies the submission so stale completions can be dropped.
type SearchRequestedEvent struct {
	Seq   uint64
	Query SearchQuery
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchCompletedEvent carries a page of results
type SearchCompletedEvent struct {
	Seq  uint64
	Page SearchPage
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a search request or its decoding fails
type SearchFailedEvent struct {
	Seq   uint64
	Query SearchQuery
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// DocumentRequestedEvent asks for a full document by id
type DocumentRequestedEvent struct {
	ID string
}

func (e DocumentRequestedEvent) Type() EventType { return EventDocumentRequested }

// DocumentLoadedEvent carries a full document
type DocumentLoadedEvent struct {
	Document Document
}

func (e DocumentLoadedEvent) Type() EventType { return EventDocumentLoaded }

// DocumentFailedEvent is emitted when a document could not be fetched
type DocumentFailedEvent struct {
	ID  string
	Err error
}

func (e DocumentFailedEvent) Type() EventType { return EventDocumentFailed }
