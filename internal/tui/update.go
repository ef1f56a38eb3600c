package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state. Every change to
// the field value re-evaluates the pipeline against the new value.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.submissions = append(m.submissions, Submission{
				Value:  m.field.Value(),
				Result: m.current,
			})
			m.field.SetValue("")
			m.current = m.pipeline.Evaluate("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	m.current = m.pipeline.Evaluate(m.field.Value())
	return m, cmd
}
