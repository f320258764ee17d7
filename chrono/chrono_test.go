package chrono

import (
	"testing"
	"time"
	_ "time/tzdata"

	"gluekit/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayAndMonth(t *testing.T) {
	assert.Equal(t, "Sun", Day(0, false))
	assert.Equal(t, "Saturday", Day(6, true))
	assert.Equal(t, "", Day(7, false))
	assert.Equal(t, "", Day(-1, true))

	assert.Equal(t, "Jan", Month(0, false))
	assert.Equal(t, "December", Month(11, true))
	assert.Equal(t, "", Month(12, false))
}

func TestNameTablesAreCopies(t *testing.T) {
	days := Days(false)
	days[0] = "changed"

	assert.Equal(t, "Sun", Day(0, false))
	assert.Equal(t, "September", Months(true)[8])
}

func TestNameTablesMatchTimePackage(t *testing.T) {
	for i := range 7 {
		assert.Equal(t, time.Weekday(i).String(), Day(i, true))
	}

	for i := range 12 {
		assert.Equal(t, time.Month(i+1).String(), Month(i, true))
	}
}

func TestUTC(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-03-05 21:30:15.250 in New York is 2024-03-06 02:30:15.250 UTC
	at := time.Date(2024, 3, 5, 21, 30, 15, 250*int(time.Millisecond), ny)

	parts := UTC(at)
	assert.Equal(t, UTCParts{
		Year:        2024,
		Month:       2,
		Day:         6,
		Weekday:     3,
		Hour:        2,
		Minute:      30,
		Second:      15,
		Millisecond: 250,
	}, parts)
	assert.Equal(t, "Mar", parts.MonthName(false))
	assert.Equal(t, "Wednesday", parts.DayName(true))
}

func TestTimeZoneOffset(t *testing.T) {
	winter := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	summer := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		zone     string
		at       time.Time
		expected time.Duration
	}{
		{"America/New_York", winter, -5 * time.Hour},
		{"America/New_York", summer, -4 * time.Hour},
		{"Europe/London", winter, 0},
		{"Europe/London", summer, time.Hour},
		{"Asia/Kolkata", winter, 5*time.Hour + 30*time.Minute},
		{"Asia/Kathmandu", summer, 5*time.Hour + 45*time.Minute},
		{"Pacific/Kiritimati", winter, 14 * time.Hour},
		{"UTC", summer, 0},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			offset, err := TimeZoneOffset(tt.zone, tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, offset)
		})
	}
}

func TestTimeZoneOffset_Defaults(t *testing.T) {
	at := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
	_, local := at.In(time.Local).Zone()

	offset, err := TimeZoneOffset("", at)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(local)*time.Second, offset)

	_, err = TimeZoneOffset("UTC", time.Time{})
	require.NoError(t, err)
}

func TestTimeZoneOffset_UnknownZone(t *testing.T) {
	_, err := TimeZoneOffset("Mars/Olympus_Mons", time.Now())
	require.Error(t, err)
	assert.True(t, apperr.IsUser(err))
	assert.Contains(t, err.Error(), "Mars/Olympus_Mons")
}

func TestFormat(t *testing.T) {
	// Tuesday
	at := time.Date(2024, 3, 5, 15, 4, 0, 0, time.UTC)

	tests := []struct {
		name     string
		opts     FormatOptions
		expected string
	}{
		{"default", FormatOptions{}, "Mar 5"},
		{"year", FormatOptions{Year: true}, "Mar 5, 2024"},
		{"long", FormatOptions{Long: true, Year: true}, "March 5, 2024"},
		{"weekday", FormatOptions{Weekday: true, Year: true}, "Tue, Mar 5, 2024"},
		{"long weekday", FormatOptions{Weekday: true, Long: true}, "Tuesday, March 5"},
		{"numeric", FormatOptions{Numeric: true, Year: true}, "3/5/2024"},
		{"numeric without year", FormatOptions{Numeric: true}, "3/5"},
		{"time", FormatOptions{Weekday: true, Year: true, Time: true}, "Tue, Mar 5, 2024, 3:04 PM"},
		{"zone", FormatOptions{TimeZone: "America/New_York", Time: true}, "Mar 5, 10:04 AM"},
		{"zone crossing midnight", FormatOptions{TimeZone: "Asia/Tokyo", Time: true, Numeric: true}, "3/6, 12:04 AM"},
		{"unknown zone", FormatOptions{TimeZone: "Nowhere/Land"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(at, tt.opts))
		})
	}
}

func TestFormat_ZeroTime(t *testing.T) {
	assert.Equal(t, "", Format(time.Time{}, FormatOptions{Year: true}))
}

func TestDurationString(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		long     bool
		expected string
	}{
		{"zero", 0, true, "less than a second"},
		{"zero short", 0, false, "less than a second"},
		{"sub-second rounds down", 400 * time.Millisecond, true, "less than a second"},
		{"sub-second rounds up", 500 * time.Millisecond, true, "1 second"},
		{"all buckets", 90061 * time.Second, true, "1 day, 1 hour, 1 minute, 1 second"},
		{"all buckets short", 90061 * time.Second, false, "1d, 1h, 1m, 1s"},
		{"plural", 2*day + 3*time.Hour + 4*time.Minute + 5*time.Second, true, "2 days, 3 hours, 4 minutes, 5 seconds"},
		{"zero buckets omitted", day + 30*time.Second, true, "1 day, 30 seconds"},
		{"hours only", 5 * time.Hour, false, "5h"},
		{"remainder rounding", time.Minute + 1500*time.Millisecond, true, "1 minute, 2 seconds"},
		{"negative", -time.Hour, true, "less than a second"},
		{"no weeks", 10 * day, true, "10 days"},
		{"carry into minute", 59500 * time.Millisecond, true, "1 minute"},
		{"carry into hour", 59*time.Minute + 59600*time.Millisecond, true, "1 hour"},
		{"carry into day", 23*time.Hour + 59*time.Minute + 59700*time.Millisecond, true, "1 day"},
		{"carry into day short", 23*time.Hour + 59*time.Minute + 59700*time.Millisecond, false, "1d"},
		{"carry keeps lower buckets", time.Hour + 59*time.Second + 500*time.Millisecond, false, "1h, 1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DurationString(tt.d, tt.long))
		})
	}
}

func TestISODate(t *testing.T) {
	assert.Equal(t, "2024-03-05", ISODate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "2024-03-05", ISODate(time.Date(2024, 3, 5, 23, 59, 59, 0, time.Local)))
	assert.Equal(t, "0987-01-09", ISODate(time.Date(987, 1, 9, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", ISODate(time.Time{}))

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// local calendar fields, not UTC ones
	assert.Equal(t, "2024-03-06", ISODate(time.Date(2024, 3, 6, 1, 0, 0, 0, tokyo)))
}

func TestISOString(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	at := time.Date(2024, 3, 6, 1, 2, 3, 45*int(time.Millisecond), tokyo)

	assert.Equal(t, "2024-03-05T16:02:03.045Z", ISOString(at, true))
	assert.Equal(t, "2024-03-05", ISOString(at, false))
	assert.Equal(t, "", ISOString(time.Time{}, true))
}
