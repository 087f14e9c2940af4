package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/mlb-roster-service/internal/config"
	"github.com/preston-bernstein/mlb-roster-service/internal/logging"
	"github.com/preston-bernstein/mlb-roster-service/internal/providers/fixture"
)

// selectHTTPClient returns the client the StatsAPI provider talks through.
// A nil client lets the provider build its own against the network.
func selectHTTPClient(cfg config.Config, logger *slog.Logger) *http.Client {
	switch cfg.StatsAPIConfig.Provider {
	case config.ProviderFixture:
		logging.Info(logger, "serving statsapi from embedded fixtures",
			slog.String(logging.FieldProvider, cfg.StatsAPIConfig.Provider),
		)
		client := fixture.New().HTTPClient()
		client.Timeout = cfg.StatsAPIConfig.Timeout
		return client
	default:
		return nil
	}
}
