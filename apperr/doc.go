// Package apperr defines the closed error taxonomy shared by the gluekit
// packages.
//
// Every failure is a single *Error carrying a Kind:
//   - KindUser: the caller or client supplied invalid input
//   - KindMissingField: a required field could not be found or coerced
//   - KindInvalidType: a coercion was requested for an unknown type tag
//
// The package does not decide recoverability. Callers use errors.Is against
// the ErrUser, ErrMissingField and ErrInvalidType sentinels (or KindOf) to
// route failures further up.
package apperr
