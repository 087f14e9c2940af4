package statsapi

import "fmt"

// Required scalar fields are pointers so an absent key is distinguishable from a zero value.

type teamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

type teamResponse struct {
	ID           *int    `json:"id"`
	Name         *string `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	LocationName string  `json:"locationName"`
	TeamName     string  `json:"teamName"`
	Active       *bool   `json:"active"`
	Venue        *idRef  `json:"venue"`
}

type idRef struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

type rosterResponse struct {
	Roster []rosterEntry `json:"roster"`
}

type rosterEntry struct {
	Person       *personResponse   `json:"person"`
	JerseyNumber string            `json:"jerseyNumber"`
	Position     *positionResponse `json:"position"`
	Status       statusResponse    `json:"status"`
}

type personResponse struct {
	ID       *int    `json:"id"`
	FullName *string `json:"fullName"`
}

type positionResponse struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Abbreviation *string `json:"abbreviation"`
}

type statusResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type venuesResponse struct {
	Venues []venueResponse `json:"venues"`
}

type venueResponse struct {
	ID     *int    `json:"id"`
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

func (r teamsResponse) validate() error {
	if r.Teams == nil {
		return missing("teams")
	}
	for i, t := range r.Teams {
		switch {
		case t.ID == nil:
			return missing(fmt.Sprintf("teams[%d].id", i))
		case t.Name == nil:
			return missing(fmt.Sprintf("teams[%d].name", i))
		case t.Active == nil:
			return missing(fmt.Sprintf("teams[%d].active", i))
		case t.Venue == nil || t.Venue.ID == nil:
			return missing(fmt.Sprintf("teams[%d].venue.id", i))
		}
	}
	return nil
}

func (r rosterResponse) validate() error {
	if r.Roster == nil {
		return missing("roster")
	}
	for i, e := range r.Roster {
		switch {
		case e.Person == nil || e.Person.ID == nil:
			return missing(fmt.Sprintf("roster[%d].person.id", i))
		case e.Person.FullName == nil:
			return missing(fmt.Sprintf("roster[%d].person.fullName", i))
		case e.Position == nil || e.Position.Abbreviation == nil:
			return missing(fmt.Sprintf("roster[%d].position.abbreviation", i))
		}
	}
	return nil
}

func (r venuesResponse) validate() error {
	if r.Venues == nil {
		return missing("venues")
	}
	for i, v := range r.Venues {
		switch {
		case v.ID == nil:
			return missing(fmt.Sprintf("venues[%d].id", i))
		case v.Name == nil:
			return missing(fmt.Sprintf("venues[%d].name", i))
		case v.Active == nil:
			return missing(fmt.Sprintf("venues[%d].active", i))
		}
	}
	return nil
}

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrDecode, field)
}
