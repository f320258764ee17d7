package main

import (
	"github.com/spf13/cobra"

	"gluekit/token"
)

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a random hex token",
		Example: `  # 16 hex characters
  gluekit token

  # 40 hex characters
  gluekit token --size 40`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := token.Hex(size)
			if err != nil {
				return err
			}

			return opts.render(cmd.OutOrStdout(), map[string]string{"token": tok}, tok)
		},
	}

	cmd.Flags().IntVar(&size, "size", token.DefaultSize, "Number of hex characters")

	return cmd
}

func newUUIDCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "uuid",
		Short: "Print a random (v4) UUID",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := token.UUID()
			if err != nil {
				return err
			}

			return opts.render(cmd.OutOrStdout(), map[string]string{"uuid": id}, id)
		},
	}
}
