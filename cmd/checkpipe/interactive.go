package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mlavigne/checkpipe/internal/config"
	"github.com/mlavigne/checkpipe/internal/rules"
	"github.com/mlavigne/checkpipe/internal/tui"
)

type interactiveOptions struct {
	RulesPath  string
	PipelineID string
}

var interactiveCmdRunner = runInteractive

func newInteractiveCmd(root *rootFlags) *cobra.Command {
	opts := interactiveOptions{}

	cmd := &cobra.Command{
		Use:   "interactive <rules-file>",
		Short: "Validate values live as you type them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.RulesPath = args[0]

			return interactiveCmdRunner(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.PipelineID, "pipeline", "p", "", "Pipeline id to evaluate (defaults to the file's only pipeline)")

	return cmd
}

func runInteractive(opts interactiveOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("interactive mode requires a terminal")
	}

	doc, err := config.ParseRules(opts.RulesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing rules file: %v\n", err)
		os.Exit(2)
	}

	pipelineDef, err := selectPipeline(doc, opts.PipelineID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error selecting pipeline: %v\n", err)
		os.Exit(2)
	}

	compiled, err := rules.Compile(pipelineDef.Rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error compiling pipeline: %v\n", err)
		os.Exit(2)
	}

	program := tea.NewProgram(tui.NewModel(pipelineDef.ID, compiled))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}

	return nil
}
