package dates

import "time"

// endOfDayNanos is the nanosecond component of the last represented instant
// of a day, 23:59:59.999, millisecond precision.
const endOfDayNanos = 999_000_000

// StartOfWeek returns Monday 00:00:00.000 of the Mon-Sun week containing t.
// A Sunday instant belongs to the week it ends, not the one it starts.
func StartOfWeek(t time.Time) time.Time {
	diff := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		diff = -6
	}
	year, month, day := t.AddDate(0, 0, diff).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfWeek returns Sunday 23:59:59.999 of the Mon-Sun week containing t.
func EndOfWeek(t time.Time) time.Time {
	diff := 7 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		diff = 0
	}
	year, month, day := t.AddDate(0, 0, diff).Date()
	return time.Date(year, month, day, 23, 59, 59, endOfDayNanos, t.Location())
}

// StartOfMonth returns the first day of t's month at 00:00:00.000.
func StartOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of t's month at 23:59:59.999, accounting
// for variable month length.
func EndOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month+1, 0, 23, 59, 59, endOfDayNanos, t.Location())
}

// WeekOf returns the inclusive calendar-date range of the week containing t.
func WeekOf(t time.Time) (Date, Date) {
	return DateOf(StartOfWeek(t)), DateOf(EndOfWeek(t))
}

// MonthOf returns the inclusive calendar-date range of the month containing t.
func MonthOf(t time.Time) (Date, Date) {
	return DateOf(StartOfMonth(t)), DateOf(EndOfMonth(t))
}
