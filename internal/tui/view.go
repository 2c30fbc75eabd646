package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// promptLabel is the user@host prefix shown before every command line.
// Historical entries render with the current identity, as the original
// terminal did.
func (m Model) promptLabel() string {
	user := m.sess.User
	if user == "" {
		user = "user"
	}
	return user + "@" + m.host + ":"
}

func (m Model) renderTranscript() string {
	var sb strings.Builder

	prompt := m.styles.Prompt.Render(m.promptLabel())
	for i, e := range m.trans.Entries() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(prompt)
		if e.Command != "" {
			sb.WriteString(" " + m.styles.Command.Render(e.Command))
		}
		sb.WriteString("\n")
		if e.Output != "" {
			sb.WriteString(m.styles.Output.Render(e.Output))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	inputLine := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.styles.Prompt.Render(m.promptLabel()),
		" ",
		m.input.View(),
	)

	return m.styles.App.
		Width(m.width).
		Height(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), inputLine))
}
