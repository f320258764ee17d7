package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gluekit/internal/logme"
)

// Output formats.
const (
	textFormat = "text"
	jsonFormat = "json"
)

// errUsage marks command-line mistakes (bad flags or arguments).
var errUsage = errors.New("usage error")

// rootOptions holds the global flags.
type rootOptions struct {
	verbose bool
	output  string
	noColor bool
}

// newRootCmd builds the command tree. A fresh tree is built per invocation so
// flag state never leaks between runs.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "gluekit",
		Short: "Helpers for application glue",
		Long: `gluekit bundles small helpers for application glue: typed access to
JSON and YAML documents, random tokens, slugs, plurals, and date and
duration formatting.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logme.SetDebug(true)
			}

			if opts.noColor {
				color.NoColor = true
			}

			switch opts.output {
			case textFormat, jsonFormat:
				return nil
			default:
				return fmt.Errorf("%w: unknown output format %q (want text or json)", errUsage, opts.output)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.output, "output", textFormat, "Output format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	// Bare "gluekit" prints help; a stray positional is an unknown command.
	rootCmd.Args = usageArgs(cobra.NoArgs)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	}

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	rootCmd.AddCommand(
		newTokenCmd(opts),
		newUUIDCmd(opts),
		newSlugCmd(opts),
		newPluralCmd(opts),
		newOrdinalCmd(opts),
		newCSVCmd(opts),
		newDurationCmd(opts),
		newDateCmd(opts),
		newOffsetCmd(opts),
		newGetCmd(opts),
		newQueryCmd(opts),
		newValidateCmd(opts),
		newVersionCmd(opts),
	)

	return rootCmd
}

// render prints value as JSON, or plain as text.
func (o *rootOptions) render(w io.Writer, value any, plain string) error {
	if o.output == jsonFormat {
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}

		_, err = fmt.Fprintln(w, string(data))

		return err
	}

	_, err := fmt.Fprintln(w, plain)

	return err
}

// usageArgs wraps an argument validator so its failures are usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}

		return nil
	}
}

func exactArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.ExactArgs(n))
}

func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return usageArgs(cobra.RangeArgs(lo, hi))
}

// exclusiveFlags reports a usage error when more than one of names was set.
func exclusiveFlags(cmd *cobra.Command, names ...string) error {
	var set []string

	for _, name := range names {
		if cmd.Flags().Changed(name) {
			set = append(set, "--"+name)
		}
	}

	if len(set) > 1 {
		return fmt.Errorf("%w: %s cannot be used together", errUsage, strings.Join(set, " and "))
	}

	return nil
}
