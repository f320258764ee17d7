package access

import (
	"time"

	"gluekit/apperr"
	"gluekit/internal/common"
)

// Get reads the value at path and coerces it to kind.
//
// When the value is missing or not coercible, the first fallback (if any) is
// returned as is; without a fallback the field is required and an
// apperr.KindMissingField error naming the kind and path is returned.
// An invalid kind always fails with apperr.KindInvalidType.
func Get(source any, path string, kind Kind, fallback ...any) (any, error) {
	raw, _ := ParsePath(path).Lookup(source)

	return resolve(raw, path, kind, fallback)
}

// resolve coerces raw and applies the fallback/required rules.
func resolve(raw any, path string, kind Kind, fallback []any) (any, error) {
	value, ok, err := TreatAs(raw, kind)
	if err != nil {
		return nil, err
	}

	if ok {
		return value, nil
	}

	if fb, has := common.First(fallback); has {
		return fb, nil
	}

	return nil, apperr.MissingField(kind.String(), path)
}

// String reads a required (or defaulted) string field.
func String(source any, path string, fallback ...string) (string, error) {
	return typed(source, path, KindString, fallback)
}

// Number reads a required (or defaulted) number field.
func Number(source any, path string, fallback ...float64) (float64, error) {
	return typed(source, path, KindNumber, fallback)
}

// Bool reads a required (or defaulted) boolean field.
func Bool(source any, path string, fallback ...bool) (bool, error) {
	return typed(source, path, KindBool, fallback)
}

// Time reads a required (or defaulted) date field.
func Time(source any, path string, fallback ...time.Time) (time.Time, error) {
	return typed(source, path, KindDate, fallback)
}

// Slice reads a required (or defaulted) array field.
func Slice(source any, path string, fallback ...[]any) ([]any, error) {
	return typed(source, path, KindArray, fallback)
}

// Map reads a required (or defaulted) object field. Objects that are not a
// map[string]any are treated as missing.
func Map(source any, path string, fallback ...map[string]any) (map[string]any, error) {
	return typed(source, path, KindObject, fallback)
}

func typed[T any](source any, path string, kind Kind, fallback []T) (T, error) {
	var zero T

	raw, _ := ParsePath(path).Lookup(source)

	value, err := resolve(raw, path, kind, nil)
	if err == nil {
		if v, ok := value.(T); ok {
			return v, nil
		}

		err = apperr.MissingField(kind.String(), path)
	}

	if fb, has := common.First(fallback); has && apperr.KindOf(err) == apperr.KindMissingField {
		return fb, nil
	}

	return zero, err
}
