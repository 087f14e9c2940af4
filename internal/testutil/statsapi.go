package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/preston-bernstein/mlb-roster-service/internal/providers/fixture"
)

// CapturedRequest is what the fake StatsAPI saw for one call.
type CapturedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
}

// StatsAPIServer is an httptest server over the fixture StatsAPI handler that
// records every request it serves.
type StatsAPIServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []CapturedRequest
}

// NewStatsAPIServer starts a fixture-backed StatsAPI and closes it on test cleanup.
// A non-nil override handles requests instead of the fixture handler.
func NewStatsAPIServer(t *testing.T, override http.Handler) *StatsAPIServer {
	t.Helper()
	next := override
	if next == nil {
		next = fixture.New()
	}
	s := &StatsAPIServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, CapturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// Requests returns a copy of the captured requests in arrival order.
func (s *StatsAPIServer) Requests() []CapturedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CapturedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Paths returns the request paths in arrival order.
func (s *StatsAPIServer) Paths() []string {
	reqs := s.Requests()
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Path)
	}
	return out
}
