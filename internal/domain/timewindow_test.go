package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameDay(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same date", time.Date(2030, 1, 15, 10, 0, 0, 0, time.UTC), time.Date(2030, 1, 15, 23, 59, 0, 0, time.UTC), true},
		{"next date", time.Date(2030, 1, 15, 23, 0, 0, 0, time.UTC), time.Date(2030, 1, 16, 0, 30, 0, 0, time.UTC), false},
		{"same clock different year", time.Date(2030, 1, 15, 10, 0, 0, 0, time.UTC), time.Date(2031, 1, 15, 10, 0, 0, 0, time.UTC), false},
		// 20:00 EST is 01:00 UTC the following day.
		{"compared in UTC", time.Date(2030, 1, 15, 18, 0, 0, 0, est), time.Date(2030, 1, 15, 20, 0, 0, 0, est), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameDay(tt.a, tt.b))
		})
	}
}

func TestIsPast(t *testing.T) {
	now := time.Date(2030, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.True(t, IsPast(now.Add(-time.Second), now))
	assert.False(t, IsPast(now, now))
	assert.False(t, IsPast(now.Add(time.Minute), now))
}

func TestDurationAtLeast(t *testing.T) {
	start := time.Date(2030, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.True(t, DurationAtLeast(start, start.Add(time.Hour), time.Hour))
	assert.True(t, DurationAtLeast(start, start.Add(2*time.Hour), time.Hour))
	assert.False(t, DurationAtLeast(start, start.Add(59*time.Minute), time.Hour))
	assert.False(t, DurationAtLeast(start, start.Add(-time.Hour), time.Hour))
}

func TestTimeWindow_Merge(t *testing.T) {
	start := time.Date(2030, 1, 15, 10, 0, 0, 0, time.UTC)
	end := time.Date(2030, 1, 15, 12, 0, 0, 0, time.UTC)
	w := TimeWindow{Start: start, End: end}
	newEnd := time.Date(2030, 1, 15, 10, 30, 0, 0, time.UTC)

	merged := w.Merge(nil, &newEnd)

	assert.Equal(t, start, merged.Start)
	assert.Equal(t, newEnd, merged.End)
	assert.Equal(t, end, w.End, "receiver must not change")
	assert.Equal(t, w, w.Merge(nil, nil))
}

func TestParseClockTime(t *testing.T) {
	c, err := ParseClockTime("14:30")
	require.NoError(t, err)
	assert.Equal(t, ClockTime(14*60+30), c)
	assert.Equal(t, "14:30", c.String())

	for _, bad := range []string{"24:00", "9:5", "noon", ""} {
		_, err := ParseClockTime(bad)
		assert.Error(t, err, bad)
	}
}

func TestRejectionError(t *testing.T) {
	err := NewRejection(ReasonDurationTooShort)
	assert.True(t, IsRejection(err, ReasonDurationTooShort))
	assert.False(t, IsRejection(err, ReasonEndNotAfterStart))
	assert.False(t, IsRejection(ErrNotFound, ReasonDurationTooShort))
	assert.Contains(t, err.Error(), "DURATION_TOO_SHORT")
}
