package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/mlb-roster-service/internal/http/handlers"
	"github.com/preston-bernstein/mlb-roster-service/internal/http/middleware"
	"github.com/preston-bernstein/mlb-roster-service/internal/metrics"
)

// NewRouter registers the HTTP routes behind the request logging middleware.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chi(logger, recorder))
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/teams/{"+handlers.QueryParam+"}/roster", handler.TeamRoster)
	return r
}
