package chrono

import (
	"time"

	"gluekit/apperr"
)

// LoadLocation resolves an IANA zone name. The empty string selects the
// host's local zone (time.Local), unlike time.LoadLocation which maps it to
// UTC. Unknown names are user errors.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, apperr.Userf("invalid time zone %q", name).WithErr(err)
	}

	return loc, nil
}

// TimeZoneOffset returns the offset to add to a UTC instant to obtain the
// wall-clock time in zone at that instant. An empty zone means the host's
// local zone and a zero at means now. Sub-hour zones are exact.
func TimeZoneOffset(zone string, at time.Time) (time.Duration, error) {
	loc, err := LoadLocation(zone)
	if err != nil {
		return 0, err
	}

	if at.IsZero() {
		at = time.Now()
	}

	_, offset := at.In(loc).Zone()

	return time.Duration(offset) * time.Second, nil
}
