package statsapi

import (
	"github.com/preston-bernstein/mlb-roster-service/internal/domain/players"
	"github.com/preston-bernstein/mlb-roster-service/internal/domain/teams"
	"github.com/preston-bernstein/mlb-roster-service/internal/domain/venues"
)

// Mappers assume the payload already passed validate().

func mapTeams(r teamsResponse) []teams.Team {
	out := make([]teams.Team, 0, len(r.Teams))
	for _, t := range r.Teams {
		out = append(out, mapTeam(t))
	}
	return out
}

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:           *t.ID,
		Name:         *t.Name,
		Abbreviation: t.Abbreviation,
		LocationName: t.LocationName,
		TeamName:     t.TeamName,
		Active:       *t.Active,
		VenueID:      *t.Venue.ID,
	}
}

func mapRoster(teamID int, r rosterResponse) *players.Roster {
	roster := &players.Roster{
		TeamID:  teamID,
		Players: make([]players.Player, 0, len(r.Roster)),
	}
	for _, e := range r.Roster {
		roster.Players = append(roster.Players, mapPlayer(e))
	}
	return roster
}

func mapPlayer(e rosterEntry) players.Player {
	return players.Player{
		ID:           *e.Person.ID,
		FullName:     *e.Person.FullName,
		JerseyNumber: e.JerseyNumber,
		Position:     *e.Position.Abbreviation,
		PositionName: e.Position.Name,
		Status:       e.Status.Description,
	}
}

func mapVenues(r venuesResponse) []venues.Venue {
	out := make([]venues.Venue, 0, len(r.Venues))
	for _, v := range r.Venues {
		out = append(out, venues.Venue{
			ID:     *v.ID,
			Name:   *v.Name,
			Active: *v.Active,
		})
	}
	return out
}
