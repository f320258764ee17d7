// Package chrono provides calendar name tables, timezone offsets and
// human-readable renderings of dates and durations.
//
// Rendering follows en-US conventions ("Tue, Mar 5, 2024, 3:04 PM");
// no other locale is supported. Zone names are IANA identifiers resolved
// through the Go tz database, so binaries running on hosts without zoneinfo
// should import time/tzdata.
package chrono
