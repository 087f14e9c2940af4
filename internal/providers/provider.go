package providers

import (
	"context"

	"github.com/preston-bernstein/mlb-roster-service/internal/domain/players"
	"github.com/preston-bernstein/mlb-roster-service/internal/domain/teams"
	"github.com/preston-bernstein/mlb-roster-service/internal/domain/venues"
)

// Absent upstream data is reported as a nil/empty result with a nil error.
// A non-nil error means the call itself failed (transport, decoding).

// TeamProvider looks up teams by id or lists a season's clubs.
type TeamProvider interface {
	FetchTeam(ctx context.Context, id int) ([]teams.Team, error)
	FetchTeams(ctx context.Context, season int) ([]teams.Team, error)
}

// RosterProvider fetches a team's roster.
type RosterProvider interface {
	FetchRoster(ctx context.Context, teamID int) (*players.Roster, error)
}

// VenueProvider fetches the venue records behind a venue id.
type VenueProvider interface {
	FetchVenues(ctx context.Context, venueID int) ([]venues.Venue, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	TeamProvider
	RosterProvider
	VenueProvider
}
