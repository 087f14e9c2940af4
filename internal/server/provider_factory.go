package server

import (
	"log/slog"

	"github.com/preston-bernstein/mlb-roster-service/internal/app/roster"
	"github.com/preston-bernstein/mlb-roster-service/internal/config"
	"github.com/preston-bernstein/mlb-roster-service/internal/metrics"
	"github.com/preston-bernstein/mlb-roster-service/internal/providers"
	"github.com/preston-bernstein/mlb-roster-service/internal/providers/statsapi"
)

// providerFactory assembles the StatsAPI provider with shared logging and metrics.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return statsapi.NewClient(statsapi.Config{
		BaseURL:    cfg.StatsAPIConfig.BaseURL,
		HTTPClient: selectHTTPClient(cfg, f.logger),
		Timeout:    cfg.StatsAPIConfig.Timeout,
		Logger:     f.logger,
		Recorder:   f.metrics,
	})
}

// NewReportService wires the configured provider into a roster report service.
func NewReportService(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *roster.Service {
	return roster.NewService(roster.Config{
		Provider: newProviderFactory(logger, recorder).build(cfg),
		Logger:   logger,
		Recorder: recorder,
	})
}
