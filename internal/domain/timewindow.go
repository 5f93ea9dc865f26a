package domain

import (
	"fmt"
	"time"
)

// MinimumMeetupDuration is the shortest time window a meetup may span.
const MinimumMeetupDuration = time.Hour

// TimeWindow is a start/end instant pair.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Merge returns the window that results from replacing the non-nil bounds.
// The receiver is not modified.
func (w TimeWindow) Merge(start, end *time.Time) TimeWindow {
	out := w
	if start != nil {
		out.Start = *start
	}
	if end != nil {
		out.End = *end
	}
	return out
}

// SameDay reports whether a and b fall on the same UTC calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// IsPast reports whether instant is strictly before now.
func IsPast(instant, now time.Time) bool {
	return instant.Before(now)
}

// DurationAtLeast reports whether end - start >= minimum.
func DurationAtLeast(start, end time.Time, minimum time.Duration) bool {
	return end.Sub(start) >= minimum
}

// ClockTime is a time of day with minute precision, stored as minutes since midnight.
type ClockTime int

// ParseClockTime parses a 24-hour "HH:MM" string.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil || len(s) != len("15:04") {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

// String formats the clock time as "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now().UTC() }
