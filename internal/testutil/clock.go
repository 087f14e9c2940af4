package testutil

import (
	"time"

	"github.com/preston-bernstein/mlb-roster-service/internal/timeutil"
)

// NowAt returns a clock frozen at t.
func NowAt(t time.Time) timeutil.Clock {
	return func() time.Time { return t }
}

// MidSeason returns a clock frozen at noon UTC on July 1 of season,
// so season-scoped lookups resolve to that year.
func MidSeason(season int) timeutil.Clock {
	return NowAt(time.Date(season, time.July, 1, 12, 0, 0, 0, time.UTC))
}
