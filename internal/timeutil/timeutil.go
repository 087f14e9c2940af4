package timeutil

import "time"

// Clock returns the current time. Services take one so tests can pin the season.
type Clock func() time.Time

// Season returns the MLB season for the instant: its calendar year in the
// instant's own location.
func Season(now time.Time) int {
	return now.Year()
}

// CurrentSeason evaluates the clock and returns its season, falling back to
// the wall clock when none is provided.
func CurrentSeason(clock Clock) int {
	if clock == nil {
		return Season(time.Now())
	}
	return Season(clock())
}
