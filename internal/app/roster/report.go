package roster

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/preston-bernstein/mlb-roster-service/internal/domain/players"
	"github.com/preston-bernstein/mlb-roster-service/internal/domain/teams"
	"github.com/preston-bernstein/mlb-roster-service/internal/domain/venues"
)

var reportHeader = []string{"Team", "Jersey", "Name", "Position", "Home Stadium"}

// Format renders the roster as CSV, one row per player ordered by full name.
// Every input is required.
func Format(roster *players.Roster, team *teams.Team, venue *venues.Venue) (string, error) {
	switch {
	case team == nil:
		return "", ErrTeamUnavailable
	case roster == nil:
		return "", ErrRosterUnavailable
	case venue == nil:
		return "", ErrVenueUnavailable
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(reportHeader); err != nil {
		return "", fmt.Errorf("write report header: %w", err)
	}
	for _, p := range roster.SortedByFullName() {
		row := []string{team.Name, p.JerseyNumber, p.FullName, p.Position, venue.Name}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write report row for %s: %w", p.FullName, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush report: %w", err)
	}
	return b.String(), nil
}
