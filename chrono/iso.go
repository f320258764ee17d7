package chrono

import "time"

const (
	isoDateLayout    = "2006-01-02"
	isoInstantLayout = "2006-01-02T15:04:05.000Z"
)

// ISODate returns YYYY-MM-DD from t's own calendar fields, so a time in
// time.Local renders its local date. A zero time yields "".
func ISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(isoDateLayout)
}

// ISOString returns the UTC ISO 8601 instant with millisecond precision,
// e.g. "2024-03-05T12:00:00.000Z". Without includeTime only the date prefix
// is kept. A zero time yields "".
func ISOString(t time.Time, includeTime bool) string {
	if t.IsZero() {
		return ""
	}

	if !includeTime {
		return t.UTC().Format(isoDateLayout)
	}

	return t.UTC().Format(isoInstantLayout)
}
