package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "checkpipe",
		Short:         "checkpipe validates input values against declarative rule pipelines",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newLintCmd(flags))
	cmd.AddCommand(newInteractiveCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
