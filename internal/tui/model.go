package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlavigne/checkpipe/internal/rule"
)

// Submission records one value the user submitted with enter, together with
// the verdict it received at that moment.
type Submission struct {
	Value  string
	Result rule.Result
}

// Model contains the Bubbletea state for checkpipe's interactive validator.
// The pipeline is the sole decision maker; the model only renders whatever
// verdict it returns for the current field value.
type Model struct {
	pipelineID  string
	pipeline    rule.Pipeline[string]
	field       textinput.Model
	current     rule.Result
	submissions []Submission
	quitting    bool
}

// NewModel constructs the interactive model for the given pipeline.
func NewModel(pipelineID string, p rule.Pipeline[string]) Model {
	field := textinput.New()
	field.Placeholder = "type a value"
	field.CharLimit = 256
	field.Width = 40
	field.Focus()

	return Model{
		pipelineID: pipelineID,
		pipeline:   p,
		field:      field,
		current:    p.Evaluate(""),
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Value returns the current field value.
func (m Model) Value() string {
	return m.field.Value()
}

// CurrentResult returns the verdict for the current field value.
func (m Model) CurrentResult() rule.Result {
	return m.current
}

// Submissions returns the values submitted so far.
func (m Model) Submissions() []Submission {
	return m.submissions
}

// IsQuitting reports whether the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}
