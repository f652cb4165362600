package ui

import (
	"docsearch/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerExitMsg is sent when the full-text pager returns
type pagerExitMsg struct {
	id  string
	err error
}

// clearStatusMsg clears the footer status message set with the same seq
type clearStatusMsg struct {
	seq uint64
}
