// Package access extracts typed values from nested, dynamically typed data
// such as decoded JSON or YAML documents.
//
// # Paths
//
// Values are addressed with dot-delimited paths. Each segment is a map key;
// a segment made only of digits also indexes into a sequence:
//
//	order.customer.name
//	order.items.0.price
//
// A missing, nil or non-traversable intermediate segment means "not found";
// walking a path never fails.
//
// # Kinds
//
// The found value is coerced to one of a closed set of kinds (string, number,
// boolean, date, array, object) by TreatAs. Coercion either succeeds or
// reports "not coercible"; only an unknown Kind is an error.
//
// # Required and optional fields
//
// Get fails with an apperr.KindMissingField error when the value is absent or
// not coercible, unless a fallback is supplied. A coercible value always wins
// over the fallback.
//
// # Documents
//
// ParseJSON, ParseYAML and Load decode documents into map[string]any, Query
// addresses values with JSONPath expressions instead of dot paths, and
// Validate checks a document against a JSON Schema.
package access
