package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/mlb-roster-service/internal/app/roster"
	"github.com/preston-bernstein/mlb-roster-service/internal/config"
	httpserver "github.com/preston-bernstein/mlb-roster-service/internal/http"
	"github.com/preston-bernstein/mlb-roster-service/internal/http/handlers"
	"github.com/preston-bernstein/mlb-roster-service/internal/logging"
	"github.com/preston-bernstein/mlb-roster-service/internal/metrics"
)

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	service       *roster.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider and telemetry.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithTelemetry(cfg, logger, NewTelemetry(context.Background(), cfg, logger))
}

func newServerWithTelemetry(cfg config.Config, logger *slog.Logger, tel Telemetry) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder := tel.Recorder
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}

	svc := NewReportService(cfg, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		service:       svc,
		httpServer:    buildHTTPServer(cfg, svc, logger, recorder),
		metricsServer: buildMetricsServer(cfg, tel.Handler),
		metricsStop:   tel.Shutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv, metricsSrv httpServer) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
	}
}

func buildHTTPServer(cfg config.Config, svc handlers.ReportService, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(svc, logger)
	router := httpserver.NewRouter(handler, logger, recorder)

	return newNetHTTPServer(cfg.ServerConfig.Port, router, true)
}

func buildMetricsServer(cfg config.Config, handler http.Handler) httpServer {
	if handler == nil || !cfg.MetricsConfig.Enabled {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	return newNetHTTPServer(cfg.MetricsConfig.MetricsPort, mux, false)
}

// Run starts the HTTP and metrics listeners, then waits for context cancellation to shut down gracefully.
// A listener that fails to start calls stop.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
