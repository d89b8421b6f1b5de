package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the session.
func (m Model) View() string {
	var body string
	switch m.state {
	case StateQuestion:
		body = m.renderQuestion()
	case StateFeedback:
		body = m.renderFeedback()
	case StateDone:
		body = m.renderSummary()
	}

	sections := []string{
		m.theme.Title.Render("Mathspeak practice"),
		m.renderProgress(),
		"",
		m.theme.RoundedBox.Width(m.boxWidth()).Render(body),
	}
	if m.lastError != nil {
		sections = append(sections, m.theme.StatusError.Render("Error: "+m.lastError.Error()))
	}
	sections = append(sections, "", m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderProgress() string {
	count := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(fmt.Sprintf(" %d/%d", min(m.index, len(m.items)), len(m.items)))
	return m.progress.ViewAs(m.completion()) + count
}

func (m Model) renderQuestion() string {
	item := m.items[m.index]
	lines := []string{
		m.theme.Subtitle.Render(fmt.Sprintf("Question %d", m.index+1)),
		m.theme.Bold.Render(item.Phrase),
		"",
		m.input.View(),
	}
	if m.submitting {
		lines = append(lines, m.theme.StatusPending.Render("checking..."))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFeedback() string {
	item := m.items[m.index]
	lines := []string{
		m.theme.Subtitle.Render(fmt.Sprintf("Question %d", m.index+1)),
		m.theme.Bold.Render(item.Phrase),
		"",
	}

	switch {
	case m.lastAttempt == nil:
		lines = append(lines,
			m.theme.StatusInfo.Render("Skipped"),
			"Answer: "+m.theme.Code.Render(item.Answer))
	case m.lastAttempt.Correct:
		lines = append(lines,
			m.theme.StatusSuccess.Render("✓ Correct!"),
			"Answer: "+m.theme.Code.Render(m.lastAttempt.Answer))
	default:
		lines = append(lines,
			m.theme.StatusError.Render("✗ Not quite"),
			"You wrote: "+m.theme.Code.Render(m.lastAttempt.Answer),
			"Expected:  "+m.theme.Code.Render(m.lastAttempt.Expected))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSummary() string {
	summary := m.Summary()
	answered := len(summary.Attempts)

	lines := []string{
		m.theme.Bold.Render("Session complete"),
		"",
		fmt.Sprintf("Answered: %d", answered),
		"Correct:  " + m.theme.StatusSuccess.Render(fmt.Sprintf("%d", summary.Correct())),
	}
	if summary.Skipped > 0 {
		lines = append(lines, fmt.Sprintf("Skipped:  %d", summary.Skipped))
	}
	if answered > 0 {
		pct := float64(summary.Correct()) / float64(answered) * 100
		lines = append(lines, fmt.Sprintf("Accuracy: %.0f%%", pct))
	}

	var misses []string
	for _, a := range summary.Attempts {
		if !a.Correct {
			misses = append(misses, m.theme.StatusWarning.Render(
				fmt.Sprintf("%s: expected %s, you wrote %s", a.Phrase, a.Expected, a.Answer)))
		}
	}
	if len(misses) > 0 {
		lines = append(lines, "", m.theme.Subtitle.Render("Review"))
		lines = append(lines, misses...)
	}
	return strings.Join(lines, "\n")
}

func (m Model) boxWidth() int {
	w := m.width - 4
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}
