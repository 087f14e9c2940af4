package statsapi

const (
	providerName   = "statsapi"
	defaultBaseURL = "https://statsapi.mlb.com"

	// mlbSportID is the StatsAPI sport identifier for Major League Baseball.
	mlbSportID = 1

	teamsPath  = "/api/v1/teams"
	teamPath   = "/api/v1/teams/%d"
	rosterPath = "/api/v1/teams/%d/roster"
	venuePath  = "/api/v1/venues/%d"

	// Endpoint labels used for logs and metrics.
	endpointTeams  = "/api/v1/teams"
	endpointTeam   = "/api/v1/teams/:id"
	endpointRoster = "/api/v1/teams/:id/roster"
	endpointVenue  = "/api/v1/venues/:id"

	maxErrorBody = 512
)
