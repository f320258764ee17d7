package access

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"

	"gluekit/apperr"
)

// LoadFile loads and parses a JSON or YAML document from the given path.
// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON parses JSON data into a document. Integers decode as int64 and
// decimals as float64.
func ParseJSON(data []byte) (map[string]any, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, apperr.User("failed to parse JSON document").WithErr(err)
	}

	return asDocument(v)
}

// ParseYAML parses YAML data into a document.
func ParseYAML(data []byte) (map[string]any, error) {
	var v any

	err := yaml.Unmarshal(data, &v)
	if err != nil {
		return nil, apperr.User("failed to parse YAML document").WithErr(err)
	}

	return asDocument(v)
}

// asDocument requires an object at the document root.
func asDocument(v any) (map[string]any, error) {
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, apperr.Userf("document root must be an object, got %T", v)
	}

	return doc, nil
}
