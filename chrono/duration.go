package chrono

import (
	"strconv"
	"strings"
	"time"

	"gluekit/text"
)

const day = 24 * time.Hour

type durationUnit struct {
	size  time.Duration
	name  string
	short string
}

var durationUnits = []durationUnit{
	{day, "day", "d"},
	{time.Hour, "hour", "h"},
	{time.Minute, "minute", "m"},
	{time.Second, "second", "s"},
}

// lessThanASecond is rendered when every bucket is zero.
const lessThanASecond = "less than a second"

// DurationString renders d as days, hours, minutes and seconds, e.g.
// "1 day, 1 hour, 1 minute, 1 second" (long) or "1d, 1h, 1m, 1s" (short).
// Zero buckets are omitted and the sub-second remainder is rounded into the
// seconds bucket. Negative durations are treated as zero.
func DurationString(d time.Duration, long bool) string {
	if d < 0 {
		d = 0
	}

	// round once so a carried second can ripple into the larger buckets
	d = d.Round(time.Second)

	parts := make([]string, 0, len(durationUnits))

	for _, u := range durationUnits {
		n := int64(d / u.size)
		d -= time.Duration(n) * u.size

		if n == 0 {
			continue
		}

		if long {
			parts = append(parts, strconv.FormatInt(n, 10)+" "+text.Pluralize(u.name, int(n)))
		} else {
			parts = append(parts, strconv.FormatInt(n, 10)+u.short)
		}
	}

	if len(parts) == 0 {
		return lessThanASecond
	}

	return strings.Join(parts, ", ")
}
