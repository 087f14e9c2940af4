package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/mlb-roster-service/internal/app/roster"
	"github.com/preston-bernstein/mlb-roster-service/internal/logging"
)

// QueryParam names the path parameter holding the team id or name.
const QueryParam = "query"

// ReportService builds the roster report for a team query.
type ReportService interface {
	Execute(ctx context.Context, query string) (string, error)
}

// Handler wires HTTP routes to the roster service.
type Handler struct {
	svc    ReportService
	logger *slog.Logger
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc ReportService, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// TeamRoster renders the CSV roster report for the team in the path.
func (h *Handler) TeamRoster(w nethttp.ResponseWriter, r *nethttp.Request) {
	query, err := url.PathUnescape(chi.URLParam(r, QueryParam))
	if err != nil || strings.TrimSpace(query) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team query", h.logger)
		return
	}

	report, err := h.svc.Execute(r.Context(), query)
	switch {
	case errors.Is(err, context.Canceled):
		writeError(w, r, nethttp.StatusServiceUnavailable, "request cancelled", h.logger)
		return
	case err != nil:
		logging.Warn(loggerFromContext(r, h.logger), "roster report unavailable",
			slog.String(logging.FieldQuery, query),
			slog.String("error", err.Error()),
		)
		writeError(w, r, nethttp.StatusBadGateway, "roster unavailable", h.logger)
		return
	case report == roster.NotFound:
		writeText(w, nethttp.StatusNotFound, "text/plain; charset=utf-8", roster.NotFound, h.logger)
		return
	}

	writeText(w, nethttp.StatusOK, "text/csv; charset=utf-8", report, h.logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
