package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/mathspeak/internal/cli"
	"github.com/Veraticus/mathspeak/internal/common"
	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/Veraticus/mathspeak/internal/practice"
	"github.com/Veraticus/mathspeak/internal/tui"
	"github.com/Veraticus/mathspeak/internal/tui/themes"
	"github.com/spf13/cobra"
)

func practiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice [pattern]",
		Short: "Drill translating phrases",
		Long: fmt.Sprintf(`Ask generated practice questions for one pattern and grade the answers.
Every answer is recorded; see "mathspeak stats" for your progress.

Patterns with drills: %s

Examples:
  mathspeak practice
  mathspeak practice less_than --count 10
  mathspeak practice percent_of --tui`, supportedList()),
		Args: cobra.MaximumNArgs(1),
		RunE: runPractice,
	}

	cmd.Flags().IntP("count", "n", 0, "Number of questions (default from config)")
	cmd.Flags().Bool("tui", false, "Use the full-screen interface")

	return cmd
}

func supportedList() string {
	ids := practice.Supported()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}

func runPractice(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	useTUI, _ := cmd.Flags().GetBool("tui")

	var id model.PatternID
	if len(args) == 1 {
		id = model.PatternID(strings.ToLower(args[0]))
		if !practice.IsSupported(id) {
			return common.NewUserError(
				fmt.Sprintf("No drills for %q. Try one of: %s", args[0], supportedList()),
				common.ErrUnknownPattern)
		}
	}
	if count < 0 {
		return common.NewUserError("Count must be positive", common.ErrInvalidCount)
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Answers so far have been saved.")
	ctx := handler.HandleInterrupts(cmd.Context())

	eng, cleanup, err := initEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	items := eng.Practice(id, count)
	if len(items) == 0 {
		return common.ErrNoPracticeItems
	}

	slog.Debug("Starting practice session",
		"pattern", items[0].PatternID,
		"count", len(items),
		"tui", useTUI)

	out := cmd.OutOrStdout()

	if useTUI {
		summary, err := tui.RunPractice(ctx, items,
			tui.WithSubmit(eng.Submit),
			tui.WithTheme(themes.ForMode(settings == nil || settings.UI.DarkMode)))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, cli.RenderSummary(cli.SessionSummary{
			Attempts: summary.Attempts,
			Skipped:  summary.Skipped,
			Quit:     summary.Quit,
		}))
		return nil
	}

	prompter := cli.NewPrompter(cmd.InOrStdin(), out)
	summary, err := prompter.Run(ctx, items, eng.Submit)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderSummary(summary))
	return nil
}
