package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{
			name: "Should place Saturday January 1st in the previous year's last week",
			date: time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC),
			want: 52,
		},
		{
			name: "Should place Friday January 1st in week 53 of the previous year",
			date: time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC),
			want: 53,
		},
		{
			name: "Should place Sunday January 1st in the previous year's last week",
			date: time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
			want: 52,
		},
		{
			name: "Should place Thursday January 1st in week 1",
			date: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "Should place Monday December 29th in week 1 of the next year",
			date: time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "Should count a mid-year date",
			date: time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.date))
		})
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "2021-W52", Key(time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-W7", Key(time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC)))

	// same week, different days
	assert.Equal(t,
		Key(time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC)),
		Key(time.Date(2024, 2, 18, 23, 59, 0, 0, time.UTC)),
	)
}

func TestNowIn(t *testing.T) {
	paris := mustLoad(t, "Europe/Paris")

	now := NowIn(paris)
	assert.Equal(t, paris, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestNowIn_ConvertsWallClock(t *testing.T) {
	paris := mustLoad(t, "Europe/Paris")

	// Sunday 23:30 UTC is already Monday in Paris during winter time
	utc := time.Date(2024, 1, 7, 23, 30, 0, 0, time.UTC)
	local := utc.In(paris)

	assert.Equal(t, time.Monday, local.Weekday())
	assert.Equal(t, 0, local.Hour())
	assert.Equal(t, 2, Number(local))
	assert.Equal(t, 1, Number(utc))
}

func TestDisplayNumber(t *testing.T) {
	sunday := time.Date(2024, 2, 18, 10, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 2, 19, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, Number(sunday)-1, DisplayNumber(sunday, true))
	assert.Equal(t, Number(sunday), DisplayNumber(sunday, false))
	assert.Equal(t, Number(monday), DisplayNumber(monday, true))

	// first Sunday of the ISO year wraps to the previous year's last week
	firstSunday := time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 52, DisplayNumber(firstSunday, true))
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "Should return later the same day",
			now:  time.Date(2024, 2, 15, 18, 59, 0, 0, time.UTC), // Thursday
			want: time.Date(2024, 2, 15, 19, 0, 0, 0, time.UTC),
		},
		{
			name: "Should return now when exactly on time",
			now:  time.Date(2024, 2, 15, 19, 0, 0, 0, time.UTC),
			want: time.Date(2024, 2, 15, 19, 0, 0, 0, time.UTC),
		},
		{
			name: "Should roll to next week once passed",
			now:  time.Date(2024, 2, 15, 19, 1, 0, 0, time.UTC),
			want: time.Date(2024, 2, 22, 19, 0, 0, 0, time.UTC),
		},
		{
			name: "Should move forward from Sunday",
			now:  time.Date(2024, 2, 18, 10, 0, 0, 0, time.UTC),
			want: time.Date(2024, 2, 22, 19, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(tt.now, time.Thursday, 19, 0)
			assert.Equal(t, tt.want, got)
		})
	}
}
