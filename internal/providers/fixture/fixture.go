// Package fixture serves canned StatsAPI payloads for offline runs and tests.
package fixture

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Identifiers present in the embedded data.
const (
	GiantsTeamID  = 137
	GiantsVenueID = 2395
)

//go:embed data/*.json
var data embed.FS

// Handler answers the four StatsAPI endpoints the roster tool consumes.
type Handler struct {
	router chi.Router
	teams  map[int]json.RawMessage
	all    []byte
	venues map[int]json.RawMessage
}

// New loads the embedded payloads. It panics if they are malformed, which
// can only happen if the embedded files are edited by hand.
func New() *Handler {
	h, err := load(data)
	if err != nil {
		panic(fmt.Sprintf("fixture: %v", err))
	}
	return h
}

func load(fsys fs.FS) (*Handler, error) {
	all, err := fs.ReadFile(fsys, "data/teams.json")
	if err != nil {
		return nil, err
	}
	var teams struct {
		Teams []json.RawMessage `json:"teams"`
	}
	if err := json.Unmarshal(all, &teams); err != nil {
		return nil, fmt.Errorf("teams.json: %w", err)
	}
	byTeam, err := indexByID(teams.Teams)
	if err != nil {
		return nil, fmt.Errorf("teams.json: %w", err)
	}

	rawVenues, err := fs.ReadFile(fsys, "data/venues.json")
	if err != nil {
		return nil, err
	}
	var venues struct {
		Venues []json.RawMessage `json:"venues"`
	}
	if err := json.Unmarshal(rawVenues, &venues); err != nil {
		return nil, fmt.Errorf("venues.json: %w", err)
	}
	byVenue, err := indexByID(venues.Venues)
	if err != nil {
		return nil, fmt.Errorf("venues.json: %w", err)
	}

	h := &Handler{teams: byTeam, all: all, venues: byVenue}

	r := chi.NewRouter()
	r.Get("/api/v1/teams", h.listTeams)
	r.Get("/api/v1/teams/{id}", h.team)
	r.Get("/api/v1/teams/{id}/roster", h.roster)
	r.Get("/api/v1/venues/{id}", h.venue)
	h.router = r

	return h, nil
}

func indexByID(items []json.RawMessage) (map[int]json.RawMessage, error) {
	out := make(map[int]json.RawMessage, len(items))
	for _, raw := range items {
		var ref struct {
			ID int `json:"id"`
		}
		if err := json.Unmarshal(raw, &ref); err != nil {
			return nil, err
		}
		out[ref.ID] = raw
	}
	return out, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// Transport serves requests from the handler in-process; no network is touched.
func (h *Handler) Transport() http.RoundTripper {
	return roundTripper{handler: h}
}

// HTTPClient returns an http.Client backed by Transport.
func (h *Handler) HTTPClient() *http.Client {
	return &http.Client{Transport: h.Transport()}
}

type roundTripper struct {
	handler http.Handler
}

func (rt roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	rec := httptest.NewRecorder()
	rt.handler.ServeHTTP(rec, req)
	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

func (h *Handler) listTeams(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if _, err := strconv.Atoi(q.Get("season")); err != nil {
		http.Error(w, "season must be a year", http.StatusBadRequest)
		return
	}
	if q.Get("sportIds") != "1" {
		http.Error(w, "unsupported sportIds", http.StatusBadRequest)
		return
	}
	writeJSON(w, h.all)
}

func (h *Handler) team(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.teams[pathID(r)]
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	body, _ := json.Marshal(map[string][]json.RawMessage{"teams": {raw}})
	writeJSON(w, body)
}

func (h *Handler) roster(w http.ResponseWriter, r *http.Request) {
	body, err := fs.ReadFile(data, fmt.Sprintf("data/roster-%d.json", pathID(r)))
	if errors.Is(err, fs.ErrNotExist) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, body)
}

func (h *Handler) venue(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.venues[pathID(r)]
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	body, _ := json.Marshal(map[string][]json.RawMessage{"venues": {raw}})
	writeJSON(w, body)
}

// pathID returns -1 for ids that are not integers so lookups miss.
func pathID(r *http.Request) int {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return -1
	}
	return id
}

func writeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
