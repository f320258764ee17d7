package access

import (
	"os"
	"path/filepath"
	"testing"

	"gluekit/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderJSON = `{
  "id": "A-100",
  "total": 19.9,
  "items": [
    {"sku": "X1", "qty": 2},
    {"sku": "Y2", "qty": 1}
  ],
  "customer": {"name": "Ada", "vip": true}
}`

const orderYAML = `
id: A-100
total: 19.9
placed: "2024-03-05"
items:
  - sku: X1
    qty: 2
  - sku: Y2
    qty: 1
customer:
  name: Ada
  vip: true
`

func TestParseJSON(t *testing.T) {
	doc, err := ParseJSON([]byte(orderJSON))
	require.NoError(t, err)

	sku, err := String(doc, "items.1.sku")
	require.NoError(t, err)
	assert.Equal(t, "Y2", sku)

	qty, err := Number(doc, "items.0.qty")
	require.NoError(t, err)
	assert.Equal(t, 2.0, qty)

	vip, err := Bool(doc, "customer.vip")
	require.NoError(t, err)
	assert.True(t, vip)
}

func TestParseYAML(t *testing.T) {
	doc, err := ParseYAML([]byte(orderYAML))
	require.NoError(t, err)

	name, err := String(doc, "customer.name")
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)

	total, err := Number(doc, "total")
	require.NoError(t, err)
	assert.InDelta(t, 19.9, total, 0.0001)

	placed, err := Time(doc, "placed")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", placed.Format("2006-01-02"))
}

func TestParse_Errors(t *testing.T) {
	_, err := ParseJSON([]byte(`{"a": `))
	require.Error(t, err)
	assert.True(t, apperr.IsUser(err))

	_, err = ParseJSON([]byte(`[1, 2, 3]`))
	require.Error(t, err)
	assert.True(t, apperr.IsUser(err))
	assert.Contains(t, err.Error(), "document root must be an object")

	_, err = ParseYAML([]byte("a: [unclosed"))
	require.Error(t, err)
	assert.True(t, apperr.IsUser(err))

	_, err = ParseYAML([]byte("- just\n- a list\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document root must be an object")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "order.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(orderJSON), 0o600))

	yamlPath := filepath.Join(dir, "order.YML")
	require.NoError(t, os.WriteFile(yamlPath, []byte(orderYAML), 0o600))

	for _, path := range []string{jsonPath, yamlPath} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			doc, err := LoadFile(path)
			require.NoError(t, err)

			id, err := String(doc, "id")
			require.NoError(t, err)
			assert.Equal(t, "A-100", id)
		})
	}

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestQuery(t *testing.T) {
	doc, err := ParseJSON([]byte(orderJSON))
	require.NoError(t, err)

	v, err := Query(doc, "$.items[1].sku", KindString)
	require.NoError(t, err)
	assert.Equal(t, "Y2", v)

	v, err = Query(doc, "$.customer.name", KindArray)
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "d", "a"}, v)

	v, err = Query(doc, "$.items[?(@.sku == 'Y2')].qty", KindNumber)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = Query(doc, "$.items[7].sku", KindString, "none")
	require.NoError(t, err)
	assert.Equal(t, "none", v)

	_, err = Query(doc, "$.customer.email", KindString)
	assert.ErrorIs(t, err, apperr.ErrMissingField)
	assert.Contains(t, err.Error(), "$.customer.email")

	_, err = Query(doc, "$.items[", KindString)
	require.Error(t, err)
	assert.True(t, apperr.IsUser(err))

	_, err = Query(doc, "$.id", Kind(0))
	assert.ErrorIs(t, err, apperr.ErrInvalidType)
}

const orderSchema = `{
  "type": "object",
  "required": ["id", "items"],
  "properties": {
    "id": {"type": "string"},
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["sku"],
        "properties": {"qty": {"type": "integer", "minimum": 1}}
      }
    }
  }
}`

func TestValidate(t *testing.T) {
	doc, err := ParseJSON([]byte(orderJSON))
	require.NoError(t, err)

	require.NoError(t, Validate(doc, orderSchema))
	require.NoError(t, Validate(doc, []byte(orderSchema)))

	schemaDoc, err := ParseJSON([]byte(orderSchema))
	require.NoError(t, err)
	require.NoError(t, Validate(doc, schemaDoc))
}

func TestValidate_Violations(t *testing.T) {
	doc := map[string]any{
		"id": 100,
		"items": []any{
			map[string]any{"qty": 0},
		},
	}

	err := Validate(doc, orderSchema)
	require.Error(t, err)
	assert.True(t, apperr.IsUser(err))
	assert.Contains(t, err.Error(), "document validation failed")
	assert.Contains(t, err.Error(), "id")
	assert.Contains(t, err.Error(), "sku")
}

func TestValidate_BrokenSchema(t *testing.T) {
	err := Validate(map[string]any{}, `{"type": `)
	require.Error(t, err)
	assert.False(t, apperr.IsUser(err))
}
