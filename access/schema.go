package access

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"gluekit/apperr"
)

// Validate checks source against a JSON Schema. The schema may be raw JSON
// ([]byte or string) or an already decoded Go value. Every violation is
// collected into a single user error; a schema that cannot be compiled is
// reported as a plain error.
func Validate(source any, schema any) error {
	var schemaLoader gojsonschema.JSONLoader

	switch s := schema.(type) {
	case []byte:
		schemaLoader = gojsonschema.NewBytesLoader(s)
	case string:
		schemaLoader = gojsonschema.NewStringLoader(s)
	default:
		schemaLoader = gojsonschema.NewGoLoader(s)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(source))
	if err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}

	return apperr.Userf("document validation failed: %s", strings.Join(violations, "; "))
}
