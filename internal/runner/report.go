package runner

import (
	"time"

	"github.com/mlavigne/checkpipe/internal/rule"
)

// InputResult pairs one input with its evaluation outcome.
type InputResult struct {
	Input  string
	Result rule.Result
}

// Summary aggregates the evaluation results for one pipeline run.
type Summary struct {
	PipelineID string
	Total      int
	Valid      int
	Invalid    int
	Duration   time.Duration
	Results    []InputResult
}

// Add appends a result and updates counters.
func (s *Summary) Add(input string, res rule.Result) {
	s.Results = append(s.Results, InputResult{Input: input, Result: res})
	s.Total++
	if res.IsValid() {
		s.Valid++
	} else {
		s.Invalid++
	}
}

// AllValid reports whether every input was accepted.
func (s *Summary) AllValid() bool {
	return s.Invalid == 0
}

// ExitCode maps the summary onto the process exit code contract: 0 when all
// inputs are valid, 1 when any input was rejected.
func (s *Summary) ExitCode() int {
	if s.AllValid() {
		return 0
	}
	return 1
}
