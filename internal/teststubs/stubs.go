package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/mlb-roster-service/internal/domain/players"
	"github.com/preston-bernstein/mlb-roster-service/internal/domain/teams"
	"github.com/preston-bernstein/mlb-roster-service/internal/domain/venues"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Team      []teams.Team
	TeamErr   error
	Teams     []teams.Team
	TeamsErr  error
	Roster    *players.Roster
	RosterErr error
	Venues    []venues.Venue
	VenuesErr error

	TeamCalls   atomic.Int32
	TeamsCalls  atomic.Int32
	RosterCalls atomic.Int32
	VenueCalls  atomic.Int32
	LastSeason  atomic.Int32
}

// FetchTeam returns the configured id lookup result.
func (s *StubProvider) FetchTeam(ctx context.Context, id int) ([]teams.Team, error) {
	_ = ctx
	_ = id
	s.TeamCalls.Add(1)
	return s.Team, s.TeamErr
}

// FetchTeams returns the configured season listing and remembers the season asked for.
func (s *StubProvider) FetchTeams(ctx context.Context, season int) ([]teams.Team, error) {
	_ = ctx
	s.TeamsCalls.Add(1)
	s.LastSeason.Store(int32(season))
	return s.Teams, s.TeamsErr
}

// FetchRoster returns the configured roster.
func (s *StubProvider) FetchRoster(ctx context.Context, teamID int) (*players.Roster, error) {
	_ = ctx
	_ = teamID
	s.RosterCalls.Add(1)
	return s.Roster, s.RosterErr
}

// FetchVenues returns the configured venues.
func (s *StubProvider) FetchVenues(ctx context.Context, venueID int) ([]venues.Venue, error) {
	_ = ctx
	_ = venueID
	s.VenueCalls.Add(1)
	return s.Venues, s.VenuesErr
}
