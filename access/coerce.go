package access

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gluekit/apperr"
	"gluekit/text"
)

// Layouts tried, in order, for date strings that are not a bare YYYY-MM-DD.
// Layouts without an offset are read in time.Local.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// TreatAs coerces value to kind.
//
// ok is false when value is nil or the conversion fails; that is a data
// condition, not an error. err is set only when kind is not a valid Kind.
//
//   - KindString: text.Stringify rendering
//   - KindNumber: float64 from any numeric type or a parseable string; NaN fails
//   - KindBool: "true"/"false" literally, otherwise truthiness
//   - KindDate: time.Time; bare "YYYY-MM-DD" is local midnight, numbers are Unix milliseconds
//   - KindArray: []any copied from any slice or array; strings split into runes
//   - KindObject: value unchanged
func TreatAs(value any, kind Kind) (result any, ok bool, err error) {
	var coerce func(any) (any, bool)

	switch kind {
	default:
		return nil, false, apperr.InvalidType(kind.String(), "")
	case KindString:
		coerce = asString
	case KindNumber:
		coerce = asNumber
	case KindBool:
		coerce = asBool
	case KindDate:
		coerce = asDate
	case KindArray:
		coerce = asArray
	case KindObject:
		coerce = asObject
	}

	if isNil(value) {
		return nil, false, nil
	}

	result, ok = coerce(value)
	if !ok {
		return nil, false, nil
	}

	return result, true, nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func asString(value any) (any, bool) {
	return text.Stringify(value), true
}

func asNumber(value any) (any, bool) {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		n, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil || math.IsNaN(n) {
			return nil, false
		}

		return n, true
	}

	n, ok := numeric(rv)
	if !ok || math.IsNaN(n) {
		return nil, false
	}

	return n, true
}

// numeric converts integer and floating-point values to float64.
func numeric(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func asBool(value any) (any, bool) {
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
		switch rv.String() {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}

	return truthy(value), true
}

// truthy reports false for false, zero, NaN and the empty string; every other
// value is true.
func truthy(value any) bool {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	default:
		if n, ok := numeric(rv); ok {
			return n != 0 && !math.IsNaN(n)
		}

		return true
	}
}

// maxEpochMillis bounds numeric dates to +/-100,000,000 days around the epoch.
const maxEpochMillis = 8.64e15

func asDate(value any) (any, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case string:
		return parseDate(strings.TrimSpace(v))
	}

	n, ok := numeric(reflect.ValueOf(value))
	if !ok || math.IsNaN(n) || math.Abs(n) > maxEpochMillis {
		return nil, false
	}

	return time.UnixMilli(int64(n)), true
}

// parseDate reads a bare YYYY-MM-DD as local midnight, RFC 3339 with its own
// offset and the remaining layouts in time.Local.
func parseDate(s string) (any, bool) {
	if t, err := time.ParseInLocation(time.DateOnly, s, time.Local); err == nil {
		return t, true
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}

	return nil, false
}

func asArray(value any) (any, bool) {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}

		return out, true
	case reflect.String:
		runes := []rune(rv.String())

		out := make([]any, len(runes))
		for i, r := range runes {
			out[i] = string(r)
		}

		return out, true
	default:
		return nil, false
	}
}

func asObject(value any) (any, bool) {
	return value, true
}
