package runner

import (
	"context"
	"time"

	"github.com/mlavigne/checkpipe/internal/logger"
	"github.com/mlavigne/checkpipe/internal/rule"
)

// Runner evaluates compiled pipelines against batches of inputs.
type Runner struct {
	log *logger.Logger
}

// New constructs a Runner with the provided logger.
func New(log *logger.Logger) *Runner {
	return &Runner{log: log}
}

// Run evaluates every input against the pipeline and returns a summary.
// Evaluation itself never blocks; the context is consulted between inputs so
// large batches can be cancelled.
func (r *Runner) Run(ctx context.Context, pipelineID string, p rule.Pipeline[string], inputs []string) (*Summary, error) {
	start := time.Now()
	summary := &Summary{PipelineID: pipelineID}

	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			summary.Duration = time.Since(start)
			return summary, err
		}

		res := p.Evaluate(input)
		summary.Add(input, res)

		r.log.WithFields(map[string]any{
			"pipeline": pipelineID,
			"input":    input,
			"status":   string(res.Status),
		}).Debug("input evaluated")
	}

	summary.Duration = time.Since(start)

	r.log.WithFields(map[string]any{
		"pipeline": pipelineID,
		"total":    summary.Total,
		"valid":    summary.Valid,
		"invalid":  summary.Invalid,
	}).Debug("evaluation complete")

	return summary, nil
}
