package statsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/mlb-roster-service/internal/domain/players"
	"github.com/preston-bernstein/mlb-roster-service/internal/domain/teams"
	"github.com/preston-bernstein/mlb-roster-service/internal/domain/venues"
	"github.com/preston-bernstein/mlb-roster-service/internal/logging"
	"github.com/preston-bernstein/mlb-roster-service/internal/metrics"
	"github.com/preston-bernstein/mlb-roster-service/internal/providers"
)

// ErrDecode marks an upstream payload that is not valid JSON or lacks a required field.
var ErrDecode = errors.New("statsapi: malformed response")

// Config controls how the StatsAPI client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
	Recorder   *metrics.Recorder
}

// Client fetches teams, rosters and venues from the MLB StatsAPI and maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	recorder   *metrics.Recorder
}

var _ providers.DataProvider = (*Client)(nil)

// NewClient constructs a StatsAPI client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
		recorder:   cfg.Recorder,
	}
}

// FetchTeam returns the teams listed under a single team id.
func (c *Client) FetchTeam(ctx context.Context, id int) ([]teams.Team, error) {
	var payload teamsResponse
	found, err := c.get(ctx, endpointTeam, fmt.Sprintf(teamPath, id), nil, &payload)
	if err != nil || !found {
		return nil, err
	}
	return mapTeams(payload), nil
}

// FetchTeams lists the MLB clubs for a season.
func (c *Client) FetchTeams(ctx context.Context, season int) ([]teams.Team, error) {
	query := url.Values{}
	query.Set("season", strconv.Itoa(season))
	query.Set("sportIds", strconv.Itoa(mlbSportID))

	var payload teamsResponse
	found, err := c.get(ctx, endpointTeams, teamsPath, query, &payload)
	if err != nil || !found {
		return nil, err
	}
	return mapTeams(payload), nil
}

// FetchRoster returns the team's roster, or nil when the upstream has none.
func (c *Client) FetchRoster(ctx context.Context, teamID int) (*players.Roster, error) {
	var payload rosterResponse
	found, err := c.get(ctx, endpointRoster, fmt.Sprintf(rosterPath, teamID), nil, &payload)
	if err != nil || !found {
		return nil, err
	}
	return mapRoster(teamID, payload), nil
}

// FetchVenues returns every venue record listed under the venue id.
func (c *Client) FetchVenues(ctx context.Context, venueID int) ([]venues.Venue, error) {
	var payload venuesResponse
	found, err := c.get(ctx, endpointVenue, fmt.Sprintf(venuePath, venueID), nil, &payload)
	if err != nil || !found {
		return nil, err
	}
	return mapVenues(payload), nil
}

type validator interface {
	validate() error
}

// get issues a GET and decodes a 200 body into out. Any other status is logged
// and reported as found=false with a nil error.
func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out validator) (bool, error) {
	req, err := c.buildRequest(ctx, path, query)
	if err != nil {
		return false, err
	}

	logger := logging.FromContext(ctx, c.logger)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recorder.RecordUpstreamCall(endpoint, time.Since(start), err)
		return false, fmt.Errorf("statsapi: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := &providers.StatusError{
			Provider:   providerName,
			Endpoint:   req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
		c.recorder.RecordUpstreamCall(endpoint, time.Since(start), statusErr)
		logging.Error(logger, "statsapi request returned no result", statusErr,
			slog.String(logging.FieldProvider, providerName),
			slog.String(logging.FieldEndpoint, endpoint),
			slog.String(logging.FieldPath, path),
			slog.Int(logging.FieldStatusCode, resp.StatusCode),
		)
		return false, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		decodeErr := fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		c.recorder.RecordUpstreamCall(endpoint, time.Since(start), decodeErr)
		return false, decodeErr
	}
	if err := out.validate(); err != nil {
		decodeErr := fmt.Errorf("%s: %w", path, err)
		c.recorder.RecordUpstreamCall(endpoint, time.Since(start), decodeErr)
		return false, decodeErr
	}

	duration := time.Since(start)
	c.recorder.RecordUpstreamCall(endpoint, duration, nil)
	logging.Debug(logger, "statsapi request complete",
		slog.String(logging.FieldEndpoint, endpoint),
		slog.String(logging.FieldPath, path),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return true, nil
}

func (c *Client) buildRequest(ctx context.Context, path string, query url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("statsapi: build request %s: %w", path, err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	for key, value := range requestHeaders {
		req.Header.Set(key, value)
	}
	return req, nil
}
