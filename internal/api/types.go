package api

import (
	"errors"
	"fmt"

	"docsearch/internal/domain"
)

// ErrNotFound is returned when the backend has no document with the requested id
var ErrNotFound = errors.New("document not found")

// StatusError is returned for any non-2xx response
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api returned status %d", e.StatusCode)
}

// SearchResponse is the body of GET /api/search/
type SearchResponse struct {
	Results    []domain.ResultSummary `json:"results"`
	Total      int                    `json:"total"`
	Suggestion string                 `json:"suggestion,omitempty"`
}

// HealthResponse is the body of GET /api/healthz/
type HealthResponse struct {
	Status        string `json:"status"`
	ElasticStatus string `json:"elastic_status,omitempty"`
}

// errorBody matches the backend's {"detail": "..."} error payloads
type errorBody struct {
	Detail string `json:"detail"`
}
