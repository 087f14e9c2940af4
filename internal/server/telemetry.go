package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/mlb-roster-service/internal/config"
	"github.com/preston-bernstein/mlb-roster-service/internal/logging"
	"github.com/preston-bernstein/mlb-roster-service/internal/metrics"
)

var metricsSetup = metrics.Setup

// Telemetry bundles the recorder with its Prometheus handler and exporter shutdown.
// Handler is nil when metrics are disabled.
type Telemetry struct {
	Recorder *metrics.Recorder
	Handler  http.Handler
	Shutdown func(context.Context) error
}

// NewTelemetry configures metrics export from cfg. A setup failure is logged and
// the recorder falls back to in-memory counters.
func NewTelemetry(ctx context.Context, cfg config.Config, logger *slog.Logger) Telemetry {
	rec, handler, shutdown, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.MetricsConfig.Enabled,
		ServiceName:  cfg.MetricsConfig.ServiceName,
		OtlpEndpoint: cfg.MetricsConfig.OtlpEndpoint,
		OtlpInsecure: cfg.MetricsConfig.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return Telemetry{Recorder: metrics.NewRecorder()}
	}
	return Telemetry{Recorder: rec, Handler: handler, Shutdown: shutdown}
}

// Close flushes and stops the exporters, if any.
func (t Telemetry) Close(ctx context.Context) error {
	if t.Shutdown == nil {
		return nil
	}
	return t.Shutdown(ctx)
}
