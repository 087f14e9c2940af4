package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/mlb-roster-service/internal/config"
	"github.com/preston-bernstein/mlb-roster-service/internal/metrics"
	"github.com/preston-bernstein/mlb-roster-service/internal/testutil"
)

func TestNewTelemetryFallsBackOnSetupError(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	logger, buf := testutil.NewBufferLogger()
	tel := NewTelemetry(context.Background(), config.Config{MetricsConfig: config.MetricsConfig{Enabled: true}}, logger)

	if tel.Recorder == nil {
		t.Fatalf("expected fallback recorder even on setup failure")
	}
	if tel.Handler != nil {
		t.Fatalf("expected no handler on failure")
	}
	if err := tel.Close(context.Background()); err != nil {
		t.Fatalf("expected nil close without exporters, got %v", err)
	}
	if !strings.Contains(buf.String(), "metrics setup failed") {
		t.Fatalf("expected setup failure logged, got %s", buf.String())
	}
}

func TestNewTelemetryPassesConfig(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()

	var got metrics.TelemetryConfig
	closed := false
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		got = cfg
		return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { closed = true; return nil }, nil
	}

	cfg := config.Config{MetricsConfig: config.MetricsConfig{
		Enabled:      true,
		MetricsPort:  "9999",
		ServiceName:  "roster",
		OtlpEndpoint: "collector:4318",
		OtlpInsecure: true,
	}}
	tel := NewTelemetry(context.Background(), cfg, nil)

	if !got.Enabled || got.ServiceName != "roster" || got.OtlpEndpoint != "collector:4318" || !got.OtlpInsecure {
		t.Fatalf("unexpected telemetry config %+v", got)
	}
	if tel.Recorder == nil || tel.Handler == nil {
		t.Fatalf("expected recorder and handler on success")
	}
	if err := tel.Close(context.Background()); err != nil || !closed {
		t.Fatalf("expected shutdown invoked, err=%v closed=%v", err, closed)
	}

	srv := buildMetricsServer(cfg, tel.Handler)
	if srv == nil || srv.Addr() != ":9999" {
		t.Fatalf("expected metrics listener on :9999, got %v", srv)
	}
}

func TestMetricsServerServesPrometheusScrape(t *testing.T) {
	cfg := config.Config{MetricsConfig: config.MetricsConfig{Enabled: true, MetricsPort: "0"}}
	tel := NewTelemetry(context.Background(), cfg, nil)
	defer func() { _ = tel.Close(context.Background()) }()

	tel.Recorder.RecordReport(metrics.OutcomeOK, 0)

	srv := buildMetricsServer(cfg, tel.Handler)
	if srv == nil {
		t.Fatalf("expected metrics server")
	}
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected scrape to succeed, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "roster_reports_total") {
		t.Fatalf("expected report counter in scrape output")
	}
}

func TestBuildMetricsServerDisabled(t *testing.T) {
	if srv := buildMetricsServer(config.Config{}, http.NewServeMux()); srv != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
	cfg := config.Config{MetricsConfig: config.MetricsConfig{Enabled: true}}
	if srv := buildMetricsServer(cfg, nil); srv != nil {
		t.Fatalf("expected no metrics server without handler")
	}
}
