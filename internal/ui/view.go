package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
)

func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("MathAI Practice"))
	b.WriteString("  ")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d", m.score)))
	if m.answered > 0 {
		b.WriteString(footerStyle.Render(fmt.Sprintf("  (%d/%d correct)", m.correct, m.answered)))
	}
	b.WriteString("\n\n")

	switch m.phase {
	case phaseLoading:
		b.WriteString(hintStyle.Render("Generating a question..."))

	case phaseAnswering:
		b.WriteString(questionStyle.Render(m.current.Text))
		b.WriteString("\n\n")
		if m.graded != nil && !m.graded.Verdict.IsCorrect {
			b.WriteString(incorrectStyle.Render(m.graded.Verdict.Feedback))
			b.WriteString("\n")
			if m.graded.Verdict.NextHint != "" {
				b.WriteString(hintStyle.Render(m.graded.Verdict.NextHint))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
		if m.hint != "" {
			b.WriteString(hintStyle.Render(m.hint))
			b.WriteString("\n\n")
		}
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(footerStyle.Render("Enter submit · Ctrl+H hint · Esc quit"))

	case phaseFeedback:
		b.WriteString(questionStyle.Render(m.current.Text))
		b.WriteString("\n\n")
		b.WriteString(correctStyle.Render(m.graded.Verdict.Feedback))
		b.WriteString("\n")
		b.WriteString(scoreStyle.Render(fmt.Sprintf("+%d points", m.graded.Points)))
		b.WriteString("\n\n")
		b.WriteString(footerStyle.Render("Press any key for the next question · Esc quit"))

	case phaseError:
		b.WriteString(incorrectStyle.Render("Something went wrong: " + m.errMsg))
		b.WriteString("\n\n")
		b.WriteString(footerStyle.Render("Press any key to exit"))
	}

	return b.String()
}
