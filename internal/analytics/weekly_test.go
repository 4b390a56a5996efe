package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC) // a Wednesday

func TestResolveWeeklyRangeExplicitBounds(t *testing.T) {
	start, end, count, err := ResolveWeeklyRange("2024-01-01", "2024-01-14", 8, now)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01T00:00:00Z", start.Format(time.RFC3339))
	assert.Equal(t, "2024-01-14", YMD(end))
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 2, count, "two full ISO weeks override the requested count")
}

func TestResolveWeeklyRangeFromOnly(t *testing.T) {
	start, end, count, err := ResolveWeeklyRange("2024-06-03", "", 8, now)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-03", YMD(start))
	assert.Equal(t, "2024-06-12", YMD(end), "end defaults to end of today")
	assert.Equal(t, 2, count)
}

func TestResolveWeeklyRangeToOnly(t *testing.T) {
	start, end, count, err := ResolveWeeklyRange("", "2024-06-10", 4, now)
	require.NoError(t, err)

	// start walks back (4-1)*7 days from the end, floored to midnight
	assert.Equal(t, "2024-05-20", YMD(start))
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, "2024-06-10", YMD(end))
	assert.Equal(t, 4, count)
}

func TestResolveWeeklyRangeNeither(t *testing.T) {
	start, end, count, err := ResolveWeeklyRange("", "", 4, now)
	require.NoError(t, err)

	assert.Equal(t, "2024-05-22", YMD(start))
	assert.Equal(t, "2024-06-12", YMD(end))
	assert.Equal(t, 4, count, "no explicit bound keeps the requested count")
}

func TestResolveWeeklyRangeFromAfterTo(t *testing.T) {
	_, _, _, err := ResolveWeeklyRange("2024-02-01", "2024-01-01", 8, now)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestResolveWeeklyRangeClampsToMaxWeeks(t *testing.T) {
	_, _, count, err := ResolveWeeklyRange("2020-01-01", "2024-01-01", 8, now)
	require.NoError(t, err)
	assert.Equal(t, MaxWeeks, count)
}

func TestResolveWeeklyRangeSingleDay(t *testing.T) {
	_, _, count, err := ResolveWeeklyRange("2024-01-03", "2024-01-03", 8, now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWeeklyTwoWeeksZeroFilled(t *testing.T) {
	// Trades only in the first week; the second must still appear.
	records := []DatedRecord{
		{ProfitLoss: dec("100"), Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ProfitLoss: dec("-40"), Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
	}
	end := time.Date(2024, 1, 14, 23, 59, 59, 999000000, time.UTC)

	weeks := Weekly(records, end, 2)
	require.Len(t, weeks, 2)

	assert.Equal(t, "2024-01-01", weeks[0].WeekStart)
	assert.Equal(t, 2, weeks[0].Trades)
	assert.Equal(t, 50, weeks[0].WinRate)
	assert.Equal(t, "60.00", weeks[0].TotalPL)

	assert.Equal(t, "2024-01-08", weeks[1].WeekStart)
	assert.Equal(t, 0, weeks[1].Trades)
	assert.Equal(t, 0, weeks[1].WinRate)
	assert.Equal(t, "0.00", weeks[1].TotalPL)
}

func TestWeeklyChronologicalOrder(t *testing.T) {
	weeks := Weekly(nil, now, 4)
	require.Len(t, weeks, 4)

	for i := 1; i < len(weeks); i++ {
		assert.Less(t, weeks[i-1].WeekStart, weeks[i].WeekStart)
	}
	// ends in the week containing the end date
	assert.Equal(t, YMD(WeekStart(now)), weeks[3].WeekStart)
}

func TestWeeklyZeroPLTradeCountsNoWin(t *testing.T) {
	records := []DatedRecord{
		{ProfitLoss: dec("0"), Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
	}
	weeks := Weekly(records, now, 1)
	require.Len(t, weeks, 1)
	assert.Equal(t, 1, weeks[0].Trades)
	assert.Equal(t, 0, weeks[0].WinRate)
	assert.Equal(t, "0.00", weeks[0].TotalPL)
}
