package chrono

import (
	"strings"
	"time"
)

// FormatOptions selects the parts Format renders.
type FormatOptions struct {
	// TimeZone is an IANA zone name. Empty keeps the location carried by the time value.
	TimeZone string
	// Time appends the time of day ("3:04 PM").
	Time bool
	// Long uses full month and weekday names.
	Long bool
	// Weekday prefixes the weekday name.
	Weekday bool
	// Year includes the year.
	Year bool
	// Numeric renders the month as a number ("3/5/2024").
	Numeric bool
}

// Format renders t the way an en-US locale formatter would, e.g.
//
//	Format(t, FormatOptions{Weekday: true, Year: true, Time: true}) // "Tue, Mar 5, 2024, 3:04 PM"
//	Format(t, FormatOptions{Long: true, Year: true})                // "March 5, 2024"
//	Format(t, FormatOptions{Numeric: true, Year: true})             // "3/5/2024"
//
// A zero time or an unknown zone yields "".
func Format(t time.Time, opts FormatOptions) string {
	if t.IsZero() {
		return ""
	}

	if opts.TimeZone != "" {
		loc, err := LoadLocation(opts.TimeZone)
		if err != nil {
			return ""
		}

		t = t.In(loc)
	}

	return t.Format(opts.layout())
}

// layout builds the time.Format layout for the selected parts.
func (o FormatOptions) layout() string {
	var b strings.Builder

	if o.Weekday {
		if o.Long {
			b.WriteString("Monday, ")
		} else {
			b.WriteString("Mon, ")
		}
	}

	switch {
	case o.Numeric:
		b.WriteString("1/2")
		if o.Year {
			b.WriteString("/2006")
		}
	default:
		if o.Long {
			b.WriteString("January 2")
		} else {
			b.WriteString("Jan 2")
		}

		if o.Year {
			b.WriteString(", 2006")
		}
	}

	if o.Time {
		b.WriteString(", 3:04 PM")
	}

	return b.String()
}
