package access

import (
	"github.com/ohler55/ojg/jp"

	"gluekit/apperr"
)

// Query is Get addressed by a JSONPath expression (e.g. "$.items[0].price"
// or "$..name") instead of a dot path. The first match is coerced; no match
// behaves like a missing field. A malformed expression is a user error.
func Query(source any, expr string, kind Kind, fallback ...any) (any, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, apperr.Userf("invalid JSONPath %q", expr).WithErr(err)
	}

	return resolve(x.First(source), expr, kind, fallback)
}
