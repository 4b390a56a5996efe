package analytics

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStartReturnsMonday(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),   // Monday
		time.Date(2024, 1, 3, 15, 4, 5, 0, time.UTC),  // Wednesday
		time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC), // Sunday
		time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC), // Sunday, year boundary
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),   // leap day
	}

	for _, d := range dates {
		ws := WeekStart(d)
		assert.Equal(t, time.Monday, ws.Weekday(), "week start of %s", d)
		assert.Equal(t, 0, ws.Hour())
		assert.Equal(t, 0, ws.Minute())
		assert.Equal(t, 0, ws.Second())
		assert.Equal(t, time.UTC, ws.Location())
	}
}

func TestWeekStartIdempotent(t *testing.T) {
	d := time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC)
	once := WeekStart(d)
	twice := WeekStart(once)
	assert.True(t, once.Equal(twice))
}

func TestWeekStartSundayRemapsToSameWeek(t *testing.T) {
	sunday := time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01", YMD(WeekStart(sunday)))

	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-08", YMD(WeekStart(monday)))
}

func TestYMDFormat(t *testing.T) {
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Regexp(t, re, YMD(d))
	assert.Equal(t, "2024-03-05", YMD(d))

	// UTC calendar day regardless of the input zone
	est := time.FixedZone("EST", -5*3600)
	late := time.Date(2024, 3, 5, 23, 30, 0, 0, est) // 2024-03-06 UTC
	assert.Equal(t, "2024-03-06", YMD(late))
}

func TestDayBoundaries(t *testing.T) {
	d := time.Date(2024, 6, 15, 13, 45, 12, 0, time.UTC)

	start := StartOfDay(d)
	assert.Equal(t, "2024-06-15T00:00:00Z", start.Format(time.RFC3339))

	end := EndOfDay(d)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.Equal(t, 999000000, end.Nanosecond())
}
