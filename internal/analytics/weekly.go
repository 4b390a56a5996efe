package analytics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// MinWeeks is the smallest number of week buckets ever emitted.
	MinWeeks = 1
	// MaxWeeks caps the number of week buckets derived from an explicit range.
	MaxWeeks = 52
)

// ErrInvalidRange reports a range whose start exceeds its end.
var ErrInvalidRange = errors.New("`from` must be <= `to`")

// DatedRecord is one trade with its parent log's calendar date.
type DatedRecord struct {
	ProfitLoss decimal.Decimal
	Date       time.Time
}

// WeekBucket is the aggregate for one Monday-anchored week.
type WeekBucket struct {
	WeekStart string `json:"weekStart"`
	Trades    int    `json:"trades"`
	WinRate   int    `json:"winRate"`
	TotalPL   string `json:"totalPL"`
}

// ResolveWeeklyRange resolves the effective [start, end] range and the number
// of week buckets to emit. from and to are YYYY-MM-DD or empty; weeks is the
// requested bucket count.
//
//   - both given: [from 00:00:00.000, to 23:59:59.999]
//   - only from: end defaults to end-of-today
//   - only to or neither: start walks back (weeks-1)*7 days from the end,
//     floored to midnight
//
// When either bound was explicit the bucket count is the inclusive number of
// Monday-to-Monday spans between the resolved week starts, clamped to
// [MinWeeks, MaxWeeks]; otherwise it is the requested count.
func ResolveWeeklyRange(from, to string, weeks int, now time.Time) (start, end time.Time, count int, err error) {
	if to != "" {
		var d time.Time
		d, err = time.Parse("2006-01-02", to)
		if err != nil {
			return
		}
		end = EndOfDay(d)
	} else {
		end = EndOfDay(now)
	}

	if from != "" {
		start, err = time.Parse("2006-01-02", from)
		if err != nil {
			return
		}
	} else {
		start = StartOfDay(end.AddDate(0, 0, -(weeks-1)*7))
	}

	if start.After(end) {
		err = ErrInvalidRange
		return
	}

	count = weeks
	if from != "" || to != "" {
		days := int(WeekStart(end).Sub(WeekStart(start)).Hours() / 24)
		count = days/7 + 1
		if count < MinWeeks {
			count = MinWeeks
		}
		if count > MaxWeeks {
			count = MaxWeeks
		}
	}
	return
}

// Weekly buckets records into count Monday-anchored weeks ending in the week
// containing end, in chronological order. Weeks without trades appear with
// zero counts and a "0.00" total.
func Weekly(records []DatedRecord, end time.Time, count int) []WeekBucket {
	buckets := make(map[string]*tally)
	for _, r := range records {
		key := YMD(WeekStart(r.Date))
		t, ok := buckets[key]
		if !ok {
			t = &tally{}
			buckets[key] = t
		}
		t.add(r.ProfitLoss)
	}

	out := make([]WeekBucket, count)
	cursor := WeekStart(end)
	for i := count - 1; i >= 0; i-- {
		key := YMD(cursor)
		wb := WeekBucket{WeekStart: key, TotalPL: "0.00"}
		if t, ok := buckets[key]; ok {
			wb.Trades = t.trades
			wb.WinRate = t.winRate()
			wb.TotalPL = t.total.StringFixed(2)
		}
		out[i] = wb
		cursor = cursor.AddDate(0, 0, -7)
	}
	return out
}
