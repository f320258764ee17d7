package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"gluekit/apperr"
	"gluekit/internal/logme"
	"gluekit/text"
)

func newSlugCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "slug <text>...",
		Short:   "Convert text to a URL slug",
		Example: `  gluekit slug "Jeremy's Friend Was Here"   # jeremys-friend-was-here`,
		Args:    usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := text.Slug(strings.Join(args, " "))

			return opts.render(cmd.OutOrStdout(), map[string]string{"slug": slug}, slug)
		},
	}
}

func newPluralCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "plural <word> <count>",
		Short:   "Pluralize a word for a count",
		Example: `  gluekit plural bus 2   # 2 buses`,
		Args:    exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseInt(args[1])
			if err != nil {
				return err
			}

			word := text.Pluralize(args[0], count)

			return opts.render(cmd.OutOrStdout(),
				map[string]any{"count": count, "word": word},
				fmt.Sprintf("%d %s", count, word),
			)
		},
	}
}

func newOrdinalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "ordinal <n>",
		Short:   "Print a number with its ordinal suffix",
		Example: `  gluekit ordinal 22   # 22nd`,
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}

			return opts.render(cmd.OutOrStdout(),
				map[string]any{"number": n, "suffix": text.OrdinalSuffix(n)},
				text.Ordinal(n),
			)
		},
	}
}

func newCSVCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "csv [file]",
		Short: "Render a JSON array of rows as CSV",
		Long: `Reads a JSON array of arrays from file (or standard input when omitted
or "-") and writes it as RFC 4180 CSV.`,
		Example: `  echo '[["a","b"],["c,d","e\"f"]]' | gluekit csv`,
		Args:    rangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			rows, err := parseRows(data)
			if err != nil {
				return err
			}

			logme.Dump("rows", rows)

			out, err := text.CSV(rows)
			if err != nil {
				return err
			}

			return opts.render(cmd.OutOrStdout(), map[string]string{"csv": out}, out)
		},
	}
}

// parseRows decodes a JSON array of arrays.
func parseRows(data []byte) ([][]any, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, apperr.User("failed to parse rows").WithErr(err)
	}

	list, ok := v.([]any)
	if !ok {
		return nil, apperr.Userf("rows must be a JSON array, got %T", v)
	}

	rows := make([][]any, len(list))
	for i, item := range list {
		row, ok := item.([]any)
		if !ok {
			return nil, apperr.Userf("row %d must be an array, got %T", i, item)
		}

		rows[i] = row
	}

	return rows, nil
}

// readInput reads the file named by args[0], or stdin when absent or "-".
func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	return data, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperr.Userf("%q is not an integer", s)
	}

	return n, nil
}
