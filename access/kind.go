package access

import (
	"strings"

	"gluekit/apperr"
	"gluekit/text"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the target type of a coercion.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindString // string
	KindNumber // number
	KindBool   // boolean
	KindDate   // date
	KindArray  // array
	KindObject // object

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// KindNames returns the canonical names of all valid kinds.
func KindNames() []string {
	names := make([]string, 0, KindTotal-1)
	for k := Kind(1); int(k) < KindTotal; k++ {
		names = append(names, k.String())
	}

	return names
}

// ParseKind parses a canonical kind name ("string", "number", "boolean",
// "date", "array", "object"). "bool" is accepted as an alias. Names are
// case-insensitive. Unknown names produce an apperr.KindInvalidType error with
// a suggestion when one is close enough.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "bool" {
		return KindBool, nil
	}

	for k := Kind(1); int(k) < KindTotal; k++ {
		if k.String() == normalized {
			return k, nil
		}
	}

	return 0, apperr.InvalidType(name, text.Closest(normalized, KindNames()))
}
