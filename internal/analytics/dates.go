package analytics

import "time"

// WeekStart returns the Monday 00:00:00 UTC of the ISO week containing t.
// Sunday is remapped to 7 so Monday=1..Sunday=7.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7
	}
	return day.AddDate(0, 0, -(wd - 1))
}

// YMD formats t as YYYY-MM-DD using its UTC calendar day.
func YMD(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// StartOfDay returns 00:00:00.000 UTC of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59:59.999 UTC of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, time.UTC)
}
