package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlavigne/checkpipe/internal/config"
	"github.com/mlavigne/checkpipe/internal/rules"
)

type lintOptions struct {
	RulesPath string
	Verbose   bool
}

var lintCmdRunner = runLint

func newLintCmd(root *rootFlags) *cobra.Command {
	opts := lintOptions{}

	cmd := &cobra.Command{
		Use:   "lint <rules-file>",
		Short: "Validate a rules file without evaluating any input",
		Long: `Lint parses a rules file, checks it against the schema, and compiles
every declared pipeline. Returns exit code 0 when the file is usable and
exit code 2 when it is not.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.RulesPath = args[0]
			opts.Verbose = root.verbose

			return lintCmdRunner(cmd, opts)
		},
	}

	return cmd
}

func runLint(cmd *cobra.Command, opts lintOptions) error {
	doc, err := config.ParseRules(opts.RulesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	for _, pipeline := range doc.Pipelines {
		compiled, err := rules.Compile(pipeline.Rules)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error compiling pipeline %q: %v\n", pipeline.ID, err)
			os.Exit(2)
		}

		if opts.Verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s (%d rules)\n", pipeline.ID, compiled.Len())
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK: %d pipelines\n", len(doc.Pipelines))
	return nil
}
