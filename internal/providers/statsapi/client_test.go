package statsapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/mlb-roster-service/internal/metrics"
	"github.com/preston-bernstein/mlb-roster-service/internal/providers/fixture"
	"github.com/preston-bernstein/mlb-roster-service/internal/testutil"
)

func newFixtureClient(t *testing.T) (*Client, *testutil.StatsAPIServer, *metrics.Recorder) {
	t.Helper()
	srv := testutil.NewStatsAPIServer(t, nil)
	rec := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()
	client := NewClient(Config{
		BaseURL:  srv.URL + "/",
		Logger:   logger,
		Recorder: rec,
	})
	return client, srv, rec
}

func TestFetchTeamMapsSingleTeam(t *testing.T) {
	client, srv, rec := newFixtureClient(t)

	teams, err := client.FetchTeam(context.Background(), fixture.GiantsTeamID)
	require.NoError(t, err)
	require.Len(t, teams, 1)

	team := teams[0]
	assert.Equal(t, 137, team.ID)
	assert.Equal(t, "San Francisco Giants", team.Name)
	assert.Equal(t, "SF", team.Abbreviation)
	assert.True(t, team.Active)
	assert.Equal(t, fixture.GiantsVenueID, team.VenueID)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/api/v1/teams/137", reqs[0].Path)
	assert.Equal(t, "application/json", reqs[0].Header.Get("Accept"))
	assert.Equal(t, "application/json", reqs[0].Header.Get("Content-Type"))
	assert.Contains(t, reqs[0].Header.Get("Cache-Control"), "no-cache")
	assert.Equal(t, "no-cache", reqs[0].Header.Get("Pragma"))

	assert.Equal(t, 1, rec.Snapshot(endpointTeam).Calls)
}

func TestFetchTeamNotFoundIsAbsentAndLogged(t *testing.T) {
	srv := testutil.NewStatsAPIServer(t, nil)
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	client := NewClient(Config{BaseURL: srv.URL, Logger: logger, Recorder: rec})

	teams, err := client.FetchTeam(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, teams)

	out := buf.String()
	assert.Contains(t, out, "statsapi request returned no result")
	assert.Contains(t, out, "status_code=404")
	assert.Contains(t, out, "/api/v1/teams/999")

	snap := rec.Snapshot(endpointTeam)
	assert.Equal(t, 1, snap.Calls)
	assert.Equal(t, 1, snap.Errors)
}

func TestFetchTeamsSendsSeasonAndSport(t *testing.T) {
	client, srv, _ := newFixtureClient(t)

	teams, err := client.FetchTeams(context.Background(), 2023)
	require.NoError(t, err)
	require.Len(t, teams, 6)
	assert.Equal(t, "Oakland Athletics", teams[0].Name)
	assert.False(t, teams[2].Active, "expected historic club to be inactive")

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/api/v1/teams", reqs[0].Path)
	assert.Equal(t, "2023", reqs[0].Query.Get("season"))
	assert.Equal(t, "1", reqs[0].Query.Get("sportIds"))
}

func TestFetchRosterKeepsUpstreamOrder(t *testing.T) {
	client, _, _ := newFixtureClient(t)

	roster, err := client.FetchRoster(context.Background(), fixture.GiantsTeamID)
	require.NoError(t, err)
	require.NotNil(t, roster)
	assert.Equal(t, 137, roster.TeamID)
	require.Len(t, roster.Players, 26)

	first := roster.Players[0]
	assert.Equal(t, "Blake Sabol", first.FullName)
	assert.Equal(t, "2", first.JerseyNumber)
	assert.Equal(t, "C", first.Position)
	assert.Equal(t, "Catcher", first.PositionName)
	assert.Equal(t, "Active", first.Status)
}

func TestFetchRosterMissingIsNil(t *testing.T) {
	client, _, _ := newFixtureClient(t)

	roster, err := client.FetchRoster(context.Background(), 147)
	require.NoError(t, err)
	assert.Nil(t, roster)
}

func TestFetchVenues(t *testing.T) {
	client, srv, _ := newFixtureClient(t)

	venues, err := client.FetchVenues(context.Background(), fixture.GiantsVenueID)
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "Oracle Park", venues[0].Name)
	assert.True(t, venues[0].Active)
	assert.Equal(t, []string{"/api/v1/venues/2395"}, srv.Paths())
}

func TestFetchRosterEmptyListIsNotAbsent(t *testing.T) {
	client := clientWithBody(t, http.StatusOK, `{"roster": []}`)

	roster, err := client.FetchRoster(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, roster)
	assert.Empty(t, roster.Players)
}

func TestMalformedPayloadsAreDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		call func(*Client) error
	}{
		{"invalid json", `{"teams": [`, func(c *Client) error { _, err := c.FetchTeam(context.Background(), 1); return err }},
		{"missing teams", `{"copyright": "x"}`, func(c *Client) error { _, err := c.FetchTeams(context.Background(), 2023); return err }},
		{"team without venue", `{"teams": [{"id": 1, "name": "A", "active": true}]}`, func(c *Client) error { _, err := c.FetchTeam(context.Background(), 1); return err }},
		{"team without name", `{"teams": [{"id": 1, "active": true, "venue": {"id": 2}}]}`, func(c *Client) error { _, err := c.FetchTeam(context.Background(), 1); return err }},
		{"missing roster", `{}`, func(c *Client) error { _, err := c.FetchRoster(context.Background(), 1); return err }},
		{"player without name", `{"roster": [{"person": {"id": 1}, "position": {"abbreviation": "P"}}]}`, func(c *Client) error { _, err := c.FetchRoster(context.Background(), 1); return err }},
		{"player without position", `{"roster": [{"person": {"id": 1, "fullName": "A"}}]}`, func(c *Client) error { _, err := c.FetchRoster(context.Background(), 1); return err }},
		{"venue without active", `{"venues": [{"id": 1, "name": "Park"}]}`, func(c *Client) error { _, err := c.FetchVenues(context.Background(), 1); return err }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call(clientWithBody(t, http.StatusOK, tc.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDecode), "expected ErrDecode, got %v", err)
		})
	}
}

func TestTransportErrorsPropagate(t *testing.T) {
	rec := metrics.NewRecorder()
	client := NewClient(Config{
		BaseURL: "http://example.com",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})},
		Recorder: rec,
	})

	_, err := client.FetchVenues(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 1, rec.Snapshot(endpointVenue).Errors)
}

func TestNon200WithoutLoggerIsStillAbsent(t *testing.T) {
	client := clientWithBody(t, http.StatusBadGateway, "boom")

	venues, err := client.FetchVenues(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, venues)
}

func clientWithBody(t *testing.T, status int, body string) *Client {
	t.Helper()
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
			Request:    req,
		}, nil
	})
	return NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
	})
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
