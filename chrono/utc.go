package chrono

import "time"

// UTCParts is the calendar breakdown of an instant in UTC.
// Month and Weekday are zero-based so they index the name tables directly.
type UTCParts struct {
	Year        int
	Month       int // 0 = January
	Day         int
	Weekday     int // 0 = Sunday
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// UTC breaks t down into UTC calendar fields.
func UTC(t time.Time) UTCParts {
	u := t.UTC()

	return UTCParts{
		Year:        u.Year(),
		Month:       int(u.Month()) - 1,
		Day:         u.Day(),
		Weekday:     int(u.Weekday()),
		Hour:        u.Hour(),
		Minute:      u.Minute(),
		Second:      u.Second(),
		Millisecond: u.Nanosecond() / int(time.Millisecond),
	}
}

// MonthName returns the month name of the breakdown.
func (p UTCParts) MonthName(long bool) string {
	return Month(p.Month, long)
}

// DayName returns the weekday name of the breakdown.
func (p UTCParts) DayName(long bool) string {
	return Day(p.Weekday, long)
}
