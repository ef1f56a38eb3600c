package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mlavigne/checkpipe/internal/config"
	"github.com/mlavigne/checkpipe/internal/logger"
	"github.com/mlavigne/checkpipe/internal/rule"
	"github.com/mlavigne/checkpipe/internal/rules"
	"github.com/mlavigne/checkpipe/internal/runner"
	checkpipeerrors "github.com/mlavigne/checkpipe/pkg/errors"
)

type checkOptions struct {
	RulesPath  string
	PipelineID string
	Inputs     []string
	JSON       bool
	Verbose    bool
}

var checkCmdRunner = runCheck

func newCheckCmd(root *rootFlags) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <rules-file>",
		Short: "Evaluate inputs against a rule pipeline",
		Long: `Check evaluates input values against one pipeline declared in a rules
file. Inputs come from repeated --input flags, or from stdin (one value per
line) when stdin is not a terminal. Returns exit code 0 if every input is
valid, exit code 1 if any input is rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.RulesPath = args[0]
			opts.Verbose = root.verbose

			return checkCmdRunner(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.PipelineID, "pipeline", "p", "", "Pipeline id to evaluate (defaults to the file's only pipeline)")
	cmd.Flags().StringArrayVarP(&opts.Inputs, "input", "i", nil, "Input value to evaluate; repeatable")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results in JSON format")

	return cmd
}

func runCheck(opts checkOptions) error {
	doc, err := config.ParseRules(opts.RulesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing rules file: %v\n", err)
		os.Exit(2)
	}

	level := "info"
	if opts.Verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, Pretty: !opts.JSON})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(3)
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

	inputs := opts.Inputs
	if len(inputs) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: no inputs provided; pass --input or pipe values on stdin")
			os.Exit(2)
		}

		inputs, err = readInputs(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(2)
		}
	}

	log.WithFields(map[string]any{
		"rules":    opts.RulesPath,
		"pipeline": pipelineDef.ID,
		"inputs":   len(inputs),
	}).Debug("starting evaluation")

	summary, err := runner.New(log).Run(context.Background(), pipelineDef.ID, compiled, inputs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Evaluation error: %v\n", err)
		os.Exit(3)
	}

	if opts.JSON {
		printJSONOutput(summary, opts.RulesPath)
	} else {
		printTableOutput(summary)
	}

	os.Exit(summary.ExitCode())
	return nil
}

// selectPipeline resolves which pipeline to evaluate. When no id is given
// the file must declare exactly one pipeline.
func selectPipeline(doc *config.Document, id string) (*config.PipelineDef, error) {
	if id == "" {
		if len(doc.Pipelines) == 1 {
			return &doc.Pipelines[0], nil
		}
		return nil, checkpipeerrors.NewPipelineError("",
			fmt.Sprintf("rules file declares %d pipelines; choose one with --pipeline (available: %s)",
				len(doc.Pipelines), strings.Join(doc.PipelineIDs(), ", ")), nil)
	}

	pipeline, ok := doc.Pipeline(id)
	if !ok {
		return nil, checkpipeerrors.NewPipelineError(id,
			fmt.Sprintf("pipeline not found (available: %s)", strings.Join(doc.PipelineIDs(), ", ")), nil)
	}

	return pipeline, nil
}

// readInputs collects one input per line. Empty lines are kept: an empty
// string is a meaningful value to validate.
func readInputs(r io.Reader) ([]string, error) {
	var inputs []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		inputs = append(inputs, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return inputs, nil
}

func printTableOutput(summary *runner.Summary) {
	fmt.Println("\nValidation Results:")
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("%-32s %-9s %s\n", "Input", "Status", "Message")
	fmt.Println(strings.Repeat("-", 72))

	for _, result := range summary.Results {
		fmt.Printf("%-32s %-9s %s\n",
			truncateString(displayInput(result.Input), 32),
			fmt.Sprintf("%s %s", statusSymbol(result.Result), result.Result.Status),
			result.Result.Message,
		)
	}

	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Pipeline:  %s\n", summary.PipelineID)
	fmt.Printf("  Total:     %d\n", summary.Total)
	fmt.Printf("  ✓ Valid:   %d\n", summary.Valid)
	fmt.Printf("  ✗ Invalid: %d\n", summary.Invalid)
	fmt.Printf("  Duration:  %s\n", summary.Duration.String())

	if summary.AllValid() {
		fmt.Println("\nAll inputs valid")
	} else {
		fmt.Println("\nSome inputs were rejected")
	}
}

func printJSONOutput(summary *runner.Summary, rulesPath string) {
	type JSONResult struct {
		Input   string `json:"input"`
		Status  string `json:"status"`
		Rule    string `json:"rule,omitempty"`
		Message string `json:"message,omitempty"`
	}

	type JSONSummary struct {
		Pipeline string  `json:"pipeline"`
		Total    int     `json:"total"`
		Valid    int     `json:"valid"`
		Invalid  int     `json:"invalid"`
		Duration float64 `json:"duration_seconds"`
	}

	type JSONOutput struct {
		RulesFile string       `json:"rules_file"`
		Summary   JSONSummary  `json:"summary"`
		Results   []JSONResult `json:"results"`
	}

	jsonOutput := JSONOutput{
		RulesFile: rulesPath,
		Summary: JSONSummary{
			Pipeline: summary.PipelineID,
			Total:    summary.Total,
			Valid:    summary.Valid,
			Invalid:  summary.Invalid,
			Duration: summary.Duration.Seconds(),
		},
		Results: make([]JSONResult, len(summary.Results)),
	}

	for i, result := range summary.Results {
		jsonOutput.Results[i] = JSONResult{
			Input:   result.Input,
			Status:  string(result.Result.Status),
			Rule:    result.Result.Rule,
			Message: result.Result.Message,
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.Encode(jsonOutput)
}

func statusSymbol(res rule.Result) string {
	if res.IsValid() {
		return "✓"
	}
	return "✗"
}

func displayInput(input string) string {
	if input == "" {
		return `""`
	}
	return input
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
