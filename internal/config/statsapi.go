package config

import "time"

const (
	// ProviderStatsAPI talks to the live MLB StatsAPI.
	ProviderStatsAPI = "statsapi"
	// ProviderFixture serves embedded StatsAPI payloads without touching the network.
	ProviderFixture = "fixture"

	defaultStatsAPIBaseURL = "https://statsapi.mlb.com"
)

// StatsAPIConfig controls how we talk to the MLB StatsAPI.
// A zero Timeout leaves requests unbounded.
type StatsAPIConfig struct {
	BaseURL  string        `envconfig:"STATSAPI_BASE_URL" default:"https://statsapi.mlb.com"`
	Timeout  time.Duration `envconfig:"STATSAPI_TIMEOUT" default:"0s"`
	Provider string        `envconfig:"STATSAPI_PROVIDER" default:"statsapi"`
}
