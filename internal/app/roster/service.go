package roster

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/mlb-roster-service/internal/domain/players"
	"github.com/preston-bernstein/mlb-roster-service/internal/domain/teams"
	"github.com/preston-bernstein/mlb-roster-service/internal/domain/venues"
	"github.com/preston-bernstein/mlb-roster-service/internal/logging"
	"github.com/preston-bernstein/mlb-roster-service/internal/metrics"
	"github.com/preston-bernstein/mlb-roster-service/internal/providers"
	"github.com/preston-bernstein/mlb-roster-service/internal/timeutil"
)

// Config wires the Service collaborators. Only Provider is required.
type Config struct {
	Provider providers.DataProvider
	Now      timeutil.Clock
	Logger   *slog.Logger
	Recorder *metrics.Recorder
}

// Service resolves a team and builds its roster report.
type Service struct {
	provider providers.DataProvider
	now      timeutil.Clock
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewService constructs a Service with the provided collaborators.
func NewService(cfg Config) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		provider: cfg.Provider,
		now:      now,
		logger:   cfg.Logger,
		recorder: cfg.Recorder,
	}
}

// Execute returns the CSV report for the query, or NotFound when no team
// matches. A resolved team whose roster or venue cannot be fetched is an error.
func (s *Service) Execute(ctx context.Context, query string) (string, error) {
	start := time.Now()
	report, outcome, err := s.execute(ctx, query)
	s.recorder.RecordReport(outcome, time.Since(start))
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "roster report failed", err,
			slog.String(logging.FieldQuery, query),
		)
	}
	return report, err
}

func (s *Service) execute(ctx context.Context, query string) (string, string, error) {
	team, err := s.ResolveTeam(ctx, query)
	if err != nil {
		return "", metrics.OutcomeError, err
	}
	if team == nil {
		return NotFound, metrics.OutcomeNotFound, nil
	}

	roster, venue, err := s.fetchDetails(ctx, team)
	if err != nil {
		return "", metrics.OutcomeError, err
	}

	report, err := Format(roster, team, venue)
	if err != nil {
		return "", metrics.OutcomeError, err
	}
	logging.Info(logging.FromContext(ctx, s.logger), "roster report built",
		slog.Int(logging.FieldTeamID, team.ID),
		slog.Int(logging.FieldVenueID, venue.ID),
		slog.Int(logging.FieldCount, len(roster.Players)),
	)
	return report, metrics.OutcomeOK, nil
}

// fetchDetails loads the roster and home venue concurrently. Both are required.
func (s *Service) fetchDetails(ctx context.Context, team *teams.Team) (*players.Roster, *venues.Venue, error) {
	var (
		roster *players.Roster
		venue  *venues.Venue
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.provider.FetchRoster(gctx, team.ID)
		if err != nil {
			return fmt.Errorf("fetch roster for team %d: %w", team.ID, err)
		}
		if r == nil {
			return fmt.Errorf("%w: team %d", ErrRosterUnavailable, team.ID)
		}
		roster = r
		return nil
	})
	g.Go(func() error {
		v, err := s.homeVenue(gctx, team.VenueID)
		if err != nil {
			return err
		}
		if v == nil {
			return fmt.Errorf("%w: venue %d for team %d", ErrVenueUnavailable, team.VenueID, team.ID)
		}
		venue = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return roster, venue, nil
}
