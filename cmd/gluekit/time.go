package main

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"gluekit/access"
	"gluekit/apperr"
	"gluekit/chrono"
)

func newDurationCmd(opts *rootOptions) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "duration <milliseconds|duration>",
		Short: "Render a duration in words",
		Example: `  gluekit duration 90061000          # 1 day, 1 hour, 1 minute, 1 second
  gluekit duration 26h1m1s --short   # 1d, 2h, 1m, 1s`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDuration(args[0])
			if err != nil {
				return err
			}

			s := chrono.DurationString(d, !short)

			return opts.render(cmd.OutOrStdout(),
				map[string]any{"milliseconds": d.Milliseconds(), "text": s},
				s,
			)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Use d/h/m/s abbreviations")

	return cmd
}

// maxMillis is the largest millisecond count a time.Duration can hold.
const maxMillis = math.MaxInt64 / int64(time.Millisecond)

// parseDuration accepts an integer count of milliseconds or a Go duration.
func parseDuration(s string) (time.Duration, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		if ms > maxMillis || ms < -maxMillis {
			return 0, apperr.Userf("%q milliseconds is out of range", s)
		}

		return time.Duration(ms) * time.Millisecond, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, apperr.Userf("%q is neither milliseconds nor a duration", s)
	}

	return d, nil
}

func newDateCmd(opts *rootOptions) *cobra.Command {
	var format chrono.FormatOptions

	var iso, isoDate bool

	cmd := &cobra.Command{
		Use:   "date [date]",
		Short: "Render a date in words",
		Long: `Renders a date (RFC 3339, YYYY-MM-DD, "YYYY-MM-DD HH:MM:SS" or Unix
milliseconds) in en-US style. Without an argument the current time is used.`,
		Example: `  gluekit date 2024-03-05T15:04:00Z --weekday --year --time   # Tue, Mar 5, 2024, 3:04 PM
  gluekit date 2024-03-05T15:04:00Z --tz Asia/Tokyo --numeric  # 3/6
  gluekit date --iso`,
		Args: rangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := exclusiveFlags(cmd, "iso", "iso-date"); err != nil {
				return err
			}

			at, err := parseDate(args)
			if err != nil {
				return err
			}

			var s string

			switch {
			case iso:
				s = chrono.ISOString(at, format.Time)
			case isoDate:
				s = chrono.ISODate(at)
			default:
				if _, err := chrono.LoadLocation(format.TimeZone); err != nil {
					return err
				}

				s = chrono.Format(at, format)
			}

			return opts.render(cmd.OutOrStdout(),
				map[string]any{"text": s, "utc": chrono.UTC(at)},
				s,
			)
		},
	}

	cmd.Flags().StringVar(&format.TimeZone, "tz", "", "IANA time zone (default: the date's own zone)")
	cmd.Flags().BoolVar(&format.Time, "time", false, "Include the time of day")
	cmd.Flags().BoolVar(&format.Long, "long", false, "Use full month and weekday names")
	cmd.Flags().BoolVar(&format.Weekday, "weekday", false, "Include the weekday")
	cmd.Flags().BoolVar(&format.Year, "year", false, "Include the year")
	cmd.Flags().BoolVar(&format.Numeric, "numeric", false, "Render the month as a number")
	cmd.Flags().BoolVar(&iso, "iso", false, "Print the UTC ISO 8601 form (date only unless --time)")
	cmd.Flags().BoolVar(&isoDate, "iso-date", false, "Print YYYY-MM-DD in the date's own zone")

	return cmd
}

// parseDate reads the optional date argument, defaulting to now.
func parseDate(args []string) (time.Time, error) {
	if len(args) == 0 {
		return time.Now(), nil
	}

	if ms, err := strconv.ParseInt(args[0], 10, 64); err == nil {
		return time.UnixMilli(ms), nil
	}

	v, ok, err := access.TreatAs(args[0], access.KindDate)
	if err != nil {
		return time.Time{}, err
	}

	if !ok {
		return time.Time{}, apperr.Userf("%q is not a date", args[0])
	}

	return v.(time.Time), nil
}

func newOffsetCmd(opts *rootOptions) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "offset [zone]",
		Short: "Print the UTC offset of a time zone",
		Example: `  gluekit offset America/New_York --at 2024-01-15T12:00:00Z   # -05:00
  gluekit offset Asia/Kolkata                                # +05:30`,
		Args: rangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone := ""
			if len(args) == 1 {
				zone = args[0]
			}

			var instant time.Time

			if at != "" {
				var err error

				instant, err = parseDate([]string{at})
				if err != nil {
					return err
				}
			}

			offset, err := chrono.TimeZoneOffset(zone, instant)
			if err != nil {
				return err
			}

			return opts.render(cmd.OutOrStdout(),
				map[string]any{"zone": zone, "offset_ms": offset.Milliseconds()},
				formatOffset(offset),
			)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Instant to evaluate (default: now)")

	return cmd
}

// formatOffset renders an offset as ±HH:MM.
func formatOffset(d time.Duration) string {
	sign := '+'
	if d < 0 {
		sign = '-'
		d = -d
	}

	return fmt.Sprintf("%c%02d:%02d", sign, int(d/time.Hour), int(d%time.Hour/time.Minute))
}
