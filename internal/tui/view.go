package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const historyLimit = 8

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	title := titleStyle.Render(fmt.Sprintf("checkpipe • %s", m.pipelineID))
	sections = append(sections, title)

	sections = append(sections, sectionStyle.Render("Input"), m.field.View())
	sections = append(sections, renderVerdict(m))

	if len(m.submissions) > 0 {
		sections = append(sections, sectionStyle.Render("History"))
		sections = append(sections, renderSubmissions(m.submissions))
	}

	sections = append(sections, mutedStyle.Render("enter: submit • esc: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderVerdict(m Model) string {
	if m.current.IsValid() {
		return validStyle.Render("✓ valid")
	}
	return invalidStyle.Render(fmt.Sprintf("✗ %s", m.current.Message))
}

func renderSubmissions(submissions []Submission) string {
	start := 0
	if len(submissions) > historyLimit {
		start = len(submissions) - historyLimit
	}

	var lines []string
	for _, sub := range submissions[start:] {
		value := sub.Value
		if value == "" {
			value = mutedStyle.Render("(empty)")
		}
		if sub.Result.IsValid() {
			lines = append(lines, fmt.Sprintf(" %s %s", validStyle.Render("✓"), value))
			continue
		}
		lines = append(lines, fmt.Sprintf(" %s %s — %s", invalidStyle.Render("✗"), value, sub.Result.Message))
	}
	return strings.Join(lines, "\n")
}
