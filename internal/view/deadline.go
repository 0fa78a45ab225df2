package view

import "time"

// WithinDeadlineWindow reports whether closeDate falls inside the upcoming
// deadline window: it is still in the future relative to now, and the
// distance from now, in whole days, does not exceed dayRange. A close date
// under 24 hours away always counts as inside the window.
//
// Callers must pass the current wall-clock time on every evaluation; the
// predicate is never memoized against a stale clock.
func WithinDeadlineWindow(closeDate time.Time, dayRange int, now time.Time) bool {
	until := closeDate.Sub(now)
	if until <= 0 {
		return false
	}
	if until < 24*time.Hour {
		// same-day deadlines are always shown
		return true
	}
	days := int(until.Hours() / 24)
	return days <= dayRange
}
