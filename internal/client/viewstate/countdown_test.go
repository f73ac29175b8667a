package viewstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNextMonthStart(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "mid month",
			now:  time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
			want: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "december rolls into next year",
			now:  time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
			want: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly at month start targets the following month",
			now:  time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NextMonthStart(tt.now))
		})
	}
}

func TestRemaining_LastSecondBeforeRollover(t *testing.T) {
	now := time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC)
	target := NextMonthStart(now)

	got := Remaining(now, target)

	require.Equal(t, Countdown{Days: 0, Hours: 0, Minutes: 0, Seconds: 1}, got)
}

func TestRemaining_ClampsToZeroAtAndAfterTarget(t *testing.T) {
	target := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	at := Remaining(target, target)
	require.True(t, at.IsZero())

	after := Remaining(target.Add(5*time.Second), target)
	require.True(t, after.IsZero())
}

func TestRemaining_FloorDivision(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	target := now.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second + 900*time.Millisecond)

	got := Remaining(now, target)

	// The sub-second remainder is floored away.
	require.Equal(t, Countdown{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}, got)
}

func TestUntilNextMonth_UsesLocalCalendar(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2024, time.June, 30, 23, 0, 0, 0, loc)

	got := UntilNextMonth(now)

	require.Equal(t, Countdown{Days: 0, Hours: 1, Minutes: 0, Seconds: 0}, got)
}
