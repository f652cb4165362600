//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

type mockSource struct {
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Year     int      `json:"year"`
	Abstract string   `json:"abstract"`
	FullText string   `json:"full_text"`
}

type mockHit struct {
	ID        string              `json:"id"`
	Score     float64             `json:"score"`
	Source    mockSource          `json:"source"`
	Highlight map[string][]string `json:"highlight,omitempty"`
}

// MockAPI is an in-process search backend with a fixed corpus
type MockAPI struct {
	*httptest.Server

	mu       sync.Mutex
	docs     []mockHit
	searches []string
}

// NewMockAPI starts a backend holding n documents about germany plus one about borders
func NewMockAPI(t *testing.T, n int) *MockAPI {
	t.Helper()
	m := &MockAPI{}
	for i := 1; i <= n; i++ {
		m.docs = append(m.docs, mockHit{
			ID:    fmt.Sprintf("g%d", i),
			Score: float64(100 - i),
			Source: mockSource{
				Title:    fmt.Sprintf("Germany report %d", i),
				Authors:  []string{"Anna Schmidt", "Ben Weber"},
				Year:     2000 + i,
				Abstract: fmt.Sprintf("Abstract of germany report %d.", i),
				FullText: fmt.Sprintf("Full text of germany report %d.", i),
			},
			Highlight: map[string][]string{
				"title": {fmt.Sprintf("<em>Germany</em> report %d", i)},
			},
		})
	}
	m.docs = append(m.docs, mockHit{
		ID:     "b1",
		Score:  1,
		Source: mockSource{Title: "Borders of Europe", Authors: []string{"Cleo Martin"}, Year: 1999, Abstract: "Maps and borders."},
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/api/search/", m.handleSearch)
	mux.HandleFunc("/api/doc/", m.handleDoc)
	mux.HandleFunc("/api/healthz/", func(w http.ResponseWriter, r *http.Request) {
		writeMockJSON(w, http.StatusOK, map[string]string{"status": "ok", "elastic_status": "green"})
	})
	m.Server = httptest.NewServer(mux)
	t.Cleanup(m.Close)
	return m
}

// Searches returns the queries received so far
func (m *MockAPI) Searches() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.searches...)
}

func (m *MockAPI) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	m.mu.Lock()
	m.searches = append(m.searches, q)
	m.mu.Unlock()

	var hits []mockHit
	for _, d := range m.docs {
		if strings.Contains(strings.ToLower(d.Source.Title), q) {
			hits = append(hits, d)
		}
	}
	body := map[string]any{"total": len(hits), "results": []mockHit{}}
	if start := (page - 1) * size; start < len(hits) {
		end := start + size
		if end > len(hits) {
			end = len(hits)
		}
		body["results"] = hits[start:end]
	}
	if q == "germny" {
		body["suggestion"] = "germany"
	}
	writeMockJSON(w, http.StatusOK, body)
}

func (m *MockAPI) handleDoc(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/doc/"), "/")
	for _, d := range m.docs {
		if d.ID == id {
			writeMockJSON(w, http.StatusOK, map[string]any{"id": d.ID, "source": d.Source})
			return
		}
	}
	writeMockJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func writeMockJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
