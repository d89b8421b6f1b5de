package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/mathspeak/internal/common"
	"github.com/Veraticus/mathspeak/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// RunPractice runs an interactive practice session over items and returns
// what was answered. Cancelling ctx ends the session early.
func RunPractice(ctx context.Context, items []model.PracticeItem, opts ...Option) (Summary, error) {
	if len(items) == 0 {
		return Summary{}, common.ErrNoPracticeItems
	}

	m := NewModel(ctx, items, opts...)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if m.config.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(m, programOpts...).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return m.Summary(), fmt.Errorf("TUI error: %w", err)
	}

	result, ok := final.(Model)
	if !ok {
		return m.Summary(), fmt.Errorf("unexpected TUI model type %T", final)
	}
	summary := result.Summary()
	if err != nil {
		summary.Quit = true
	}
	if result.Err() != nil {
		return summary, result.Err()
	}
	return summary, nil
}
