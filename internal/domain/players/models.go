package players

import (
	"slices"
	"strings"
)

// Player is one roster entry.
type Player struct {
	ID           int    `json:"id"`
	FullName     string `json:"fullName"`
	JerseyNumber string `json:"jerseyNumber"`
	Position     string `json:"position"`
	PositionName string `json:"positionName"`
	Status       string `json:"status"`
}

// Roster is the full player list for one team, in upstream order.
type Roster struct {
	TeamID  int      `json:"teamId"`
	Players []Player `json:"players"`
}

// SortedByFullName returns a copy of the roster's players ordered by full name.
// Ordering is byte-wise and stable, so equal names keep their upstream order.
func (r Roster) SortedByFullName() []Player {
	sorted := slices.Clone(r.Players)
	slices.SortStableFunc(sorted, func(a, b Player) int {
		return strings.Compare(a.FullName, b.FullName)
	})
	return sorted
}
