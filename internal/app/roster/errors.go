package roster

import "errors"

// NotFound is the report returned when a query resolves to no team.
const NotFound = "Not Found"

var (
	// ErrTeamUnavailable is returned when a report is formatted without a team.
	ErrTeamUnavailable = errors.New("roster: team unavailable")
	// ErrRosterUnavailable is returned when a resolved team has no roster upstream.
	ErrRosterUnavailable = errors.New("roster: roster unavailable")
	// ErrVenueUnavailable is returned when a resolved team has no active home venue upstream.
	ErrVenueUnavailable = errors.New("roster: venue unavailable")
)
