package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Example: `  # Show version
  gluekit version

  # Show version in JSON format
  gluekit version --output json`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			info := map[string]string{
				"version":   version,
				"commit":    commit,
				"buildDate": buildDate,
				"goVersion": runtime.Version(),
			}

			plain := fmt.Sprintf("gluekit version %s", version)
			if version != "dev" {
				plain += fmt.Sprintf("\n  commit:     %s\n  built:      %s\n  go version: %s", commit, buildDate, runtime.Version())
			}

			return opts.render(cmd.OutOrStdout(), info, plain)
		},
	}
}
