package roster

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/preston-bernstein/mlb-roster-service/internal/domain/teams"
	"github.com/preston-bernstein/mlb-roster-service/internal/domain/venues"
	"github.com/preston-bernstein/mlb-roster-service/internal/logging"
	"github.com/preston-bernstein/mlb-roster-service/internal/timeutil"
)

// commissionerTeamID is the "Office of the Commissioner" entry, which has no roster.
const commissionerTeamID = 11

// ResolveTeam maps a query to a team. Integer queries are looked up by id,
// anything else is matched against the current season's active teams.
// A nil team with a nil error means nothing matched.
func (s *Service) ResolveTeam(ctx context.Context, query string) (*teams.Team, error) {
	logger := logging.FromContext(ctx, s.logger)
	if strings.TrimSpace(query) == "" {
		logging.Info(logger, "empty team query")
		return nil, nil
	}
	if id, err := strconv.Atoi(query); err == nil {
		return s.teamByID(ctx, logger, id)
	}
	return s.teamByName(ctx, logger, query)
}

func (s *Service) teamByID(ctx context.Context, logger *slog.Logger, id int) (*teams.Team, error) {
	if id == commissionerTeamID {
		logging.Info(logger, "team id is not a club", slog.Int(logging.FieldTeamID, id))
		return nil, nil
	}

	found, err := s.provider.FetchTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve team %d: %w", id, err)
	}
	if len(found) != 1 {
		logging.Info(logger, "team id did not resolve to exactly one team",
			slog.Int(logging.FieldTeamID, id),
			slog.Int(logging.FieldCount, len(found)),
		)
		return nil, nil
	}
	team := found[0]
	return &team, nil
}

func (s *Service) teamByName(ctx context.Context, logger *slog.Logger, query string) (*teams.Team, error) {
	season := timeutil.CurrentSeason(s.now)
	all, err := s.provider.FetchTeams(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("search teams for %q: %w", query, err)
	}
	for _, team := range all {
		if team.Active && team.MatchesName(query) {
			return &team, nil
		}
	}
	logging.Info(logger, "no active team matches query",
		slog.String(logging.FieldQuery, query),
		slog.Int("season", season),
	)
	return nil, nil
}

// homeVenue returns the first active venue listed under the id, or nil.
func (s *Service) homeVenue(ctx context.Context, venueID int) (*venues.Venue, error) {
	list, err := s.provider.FetchVenues(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("fetch venue %d: %w", venueID, err)
	}
	for _, venue := range list {
		if venue.Active {
			return &venue, nil
		}
	}
	return nil, nil
}
