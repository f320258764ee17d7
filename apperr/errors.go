package apperr

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

type Kind int

const (
	_ Kind = iota // skip zero value, an unset Kind is never a valid category

	KindUser         // user error
	KindMissingField // missing required field
	KindInvalidType  // invalid type

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrUser         = &Error{Kind: KindUser}
	ErrMissingField = &Error{Kind: KindMissingField}
	ErrInvalidType  = &Error{Kind: KindInvalidType}
)

// Error is the only error type produced by gluekit packages.
type Error struct {
	// Kind categorizes the failure.
	Kind Kind
	// Message is the human-readable description.
	Message string
	// Path identifies the field the error relates to (if any).
	Path string
	// Err is the wrapped cause (if any).
	Err error
}

// Error returns a formatted error string.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}

	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the wrapped cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a bare sentinel of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Message == "" && t.Path == "" && t.Err == nil && t.Kind == e.Kind
}

// User creates an error signalling invalid caller-supplied input.
func User(message string) *Error {
	return &Error{Kind: KindUser, Message: message}
}

// Userf is User with fmt.Sprintf formatting.
// Use WithErr to attach a cause instead of a %w verb.
func Userf(format string, args ...any) *Error {
	return &Error{Kind: KindUser, Message: fmt.Sprintf(format, args...)}
}

// MissingField creates an error for a required field that is absent or not coercible
// to the named type.
func MissingField(typeName, path string) *Error {
	return &Error{
		Kind:    KindMissingField,
		Message: fmt.Sprintf("missing required %s field %q", typeName, path),
		Path:    path,
	}
}

// InvalidType creates an error for an unknown type tag.
// The suggestion, when not empty, is appended as a hint.
func InvalidType(tag, suggestion string) *Error {
	msg := fmt.Sprintf("invalid type %q", tag)
	if suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}

	return &Error{Kind: KindInvalidType, Message: msg}
}

// WithPath sets the path field and returns the error for chaining.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// WithErr sets the wrapped cause and returns the error for chaining.
func (e *Error) WithErr(err error) *Error {
	e.Err = err
	return e
}

// KindOf returns the Kind of the first *Error in err's chain, or zero.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}

// IsUser reports whether err originated from invalid input.
func IsUser(err error) bool {
	return errors.Is(err, ErrUser)
}
