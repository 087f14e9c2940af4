package teams

import "strings"

// Team is the normalized MLB club record resolved from a query.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	LocationName string `json:"locationName"`
	TeamName     string `json:"teamName"`
	Active       bool   `json:"active"`
	VenueID      int    `json:"venueId"`
}

// MatchesName reports whether query is a case-insensitive substring of the team name.
func (t Team) MatchesName(query string) bool {
	return strings.Contains(strings.ToLower(t.Name), strings.ToLower(query))
}
