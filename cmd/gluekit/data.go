package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gluekit/access"
	"gluekit/internal/logme"
	"gluekit/text"
)

// fieldOptions holds the flags shared by get and query.
type fieldOptions struct {
	kind     string
	fallback string
}

func (f *fieldOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "kind", "string", "Target kind (string, number, boolean, date, array, object)")
	cmd.Flags().StringVar(&f.fallback, "default", "", "Value printed when the field is missing or not coercible")
}

// fallbacks returns the --default value when the flag was given.
func (f *fieldOptions) fallbacks(cmd *cobra.Command) []any {
	if cmd.Flags().Changed("default") {
		return []any{f.fallback}
	}

	return nil
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	var field fieldOptions

	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Read a typed value from a JSON or YAML document",
		Example: `  gluekit get order.json customer.name
  gluekit get order.yaml items.0.qty --kind number
  gluekit get order.json customer.email --default unknown`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lookup(cmd, opts, &field, args[0], func(doc map[string]any, kind access.Kind) (any, error) {
				return access.Get(doc, args[1], kind, field.fallbacks(cmd)...)
			})
		},
	}

	field.register(cmd)

	return cmd
}

func newQueryCmd(opts *rootOptions) *cobra.Command {
	var field fieldOptions

	cmd := &cobra.Command{
		Use:   "query <file> <jsonpath>",
		Short: "Read a typed value from a document with a JSONPath expression",
		Example: `  gluekit query order.json '$.items[0].sku'
  gluekit query order.json '$.items[?(@.sku == "Y2")].qty' --kind number`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lookup(cmd, opts, &field, args[0], func(doc map[string]any, kind access.Kind) (any, error) {
				return access.Query(doc, args[1], kind, field.fallbacks(cmd)...)
			})
		},
	}

	field.register(cmd)

	return cmd
}

// lookup loads the document, resolves the kind and prints what find returns.
func lookup(
	cmd *cobra.Command,
	opts *rootOptions,
	field *fieldOptions,
	path string,
	find func(map[string]any, access.Kind) (any, error),
) error {
	kind, err := access.ParseKind(field.kind)
	if err != nil {
		return err
	}

	doc, err := access.LoadFile(path)
	if err != nil {
		return err
	}

	logme.Dump("document", doc)

	value, err := find(doc, kind)
	if err != nil {
		return err
	}

	logme.DebugF("resolved %s value of type %T\n", kind, value)

	return opts.render(cmd.OutOrStdout(), map[string]any{"value": value}, renderValue(value))
}

// renderValue prints scalars plainly and composites as CSV-style cells.
func renderValue(v any) string {
	switch val := v.(type) {
	case []any:
		out, err := text.CSV([][]any{val})
		if err != nil {
			return text.Stringify(v)
		}

		return out
	default:
		return text.Stringify(v)
	}
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "validate <file> <schema>",
		Short:   "Validate a JSON or YAML document against a JSON Schema",
		Example: `  gluekit validate order.yaml order.schema.json`,
		Args:    exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := access.LoadFile(args[0])
			if err != nil {
				return err
			}

			schema, err := access.LoadFile(args[1])
			if err != nil {
				return err
			}

			if err := access.Validate(doc, schema); err != nil {
				return err
			}

			return opts.render(cmd.OutOrStdout(), map[string]bool{"valid": true}, color.GreenString("ok: ")+args[0])
		},
	}
}
