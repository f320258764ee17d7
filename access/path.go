package access

import (
	"reflect"
	"strconv"
	"strings"
)

// Path is a parsed dot-delimited field path.
type Path []string

// ParsePath splits a field path on ".". It never fails: empty segments are
// kept and simply match nothing unless a map has an empty key.
func ParsePath(path string) Path {
	return strings.Split(path, ".")
}

// String returns the dot-delimited form of the path.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Lookup walks source segment by segment. It reports false as soon as a
// segment is missing or the current value cannot be traversed.
func (p Path) Lookup(source any) (any, bool) {
	current := source

	for _, segment := range p {
		next, ok := step(current, segment)
		if !ok {
			return nil, false
		}

		current = next
	}

	return current, true
}

// step descends one segment into current.
func step(current any, segment string) (any, bool) {
	switch c := current.(type) {
	case nil:
		return nil, false
	case map[string]any:
		v, ok := c[segment]
		return v, ok
	case map[any]any:
		v, ok := c[segment]
		return v, ok
	case []any:
		idx, ok := index(segment, len(c))
		if !ok {
			return nil, false
		}

		return c[idx], true
	}

	rv := reflect.ValueOf(current)
	if rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}

		v := rv.MapIndex(reflect.ValueOf(segment).Convert(keyType))
		if !v.IsValid() {
			return nil, false
		}

		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		idx, ok := index(segment, rv.Len())
		if !ok {
			return nil, false
		}

		return rv.Index(idx).Interface(), true
	default:
		return nil, false
	}
}

// index parses an all-digit segment as a position in a sequence of length n.
func index(segment string, n int) (int, bool) {
	if segment == "" {
		return 0, false
	}

	for _, r := range segment {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	idx, err := strconv.Atoi(segment)
	if err != nil || idx >= n {
		return 0, false
	}

	return idx, true
}
