package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/mathspeak/internal/cli"
	"github.com/Veraticus/mathspeak/internal/common"
	"github.com/Veraticus/mathspeak/internal/corpus"
	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/Veraticus/mathspeak/internal/pattern"
	"github.com/spf13/cobra"
)

func examplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "examples",
		Aliases: []string{"example"},
		Short:   "Browse reference phrases",
		Long: `Browse the built-in reference phrases with their expected expressions.

Examples:
  mathspeak examples --difficulty algebra1
  mathspeak examples --tag inequality
  mathspeak examples check`,
		RunE: runExamples,
	}

	cmd.Flags().StringP("difficulty", "d", "", "Only show one level (elementary, middle, algebra1, algebra2, precalc, calculus, stats, all)")
	cmd.Flags().StringP("tag", "t", "", "Only show examples with this tag")

	cmd.AddCommand(examplesCheckCmd())
	cmd.AddCommand(examplesTagsCmd())

	return cmd
}

func difficultyFlag(cmd *cobra.Command) (model.Difficulty, error) {
	name, _ := cmd.Flags().GetString("difficulty")
	if name == "" && settings != nil {
		name = settings.Examples.DefaultDifficulty
	}
	if name == "" {
		return model.DifficultyAll, nil
	}
	d := model.Difficulty(strings.ToLower(name))
	if !d.IsValid() {
		return "", common.NewUserError(fmt.Sprintf("Unknown difficulty %q", name), common.ErrInvalidConfig)
	}
	return d, nil
}

func runExamples(cmd *cobra.Command, _ []string) error {
	difficulty, err := difficultyFlag(cmd)
	if err != nil {
		return err
	}
	tag, _ := cmd.Flags().GetString("tag")

	examples, err := corpus.Load()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderExamples(corpus.Filter(examples, difficulty, tag)))
	return nil
}

func examplesTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List example tags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			examples, err := corpus.Load()
			if err != nil {
				return err
			}
			for _, tag := range corpus.Tags(examples) {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}

func examplesCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Translate every reference phrase and report mismatches",
		RunE:  runExamplesCheck,
	}

	cmd.Flags().StringP("difficulty", "d", "", "Only check one level")
	cmd.Flags().Bool("strict", false, "Exit with an error when any example mismatches")

	return cmd
}

func runExamplesCheck(cmd *cobra.Command, _ []string) error {
	difficulty, err := difficultyFlag(cmd)
	if err != nil {
		return err
	}
	strict, _ := cmd.Flags().GetBool("strict")

	examples, err := corpus.Load()
	if err != nil {
		return err
	}
	examples = corpus.Filter(examples, difficulty, "")

	out := cmd.OutOrStdout()
	bar := cli.NewCheckProgress(cmd.ErrOrStderr(), len(examples), "Checking examples")
	report := corpus.Verify(pattern.NewTranslator(), examples, func() {
		if err := bar.Add(1); err != nil {
			slog.Debug("Failed to update progress bar", "error", err)
		}
	})
	_ = bar.Finish()

	mismatches := report.Mismatches()
	for _, o := range mismatches {
		fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("%s: expected %s, got %s",
			o.Example.Phrase, o.Example.Plain, o.Result.Plain)))
	}

	summary := fmt.Sprintf("%d/%d examples match (%.0f%%), %d recognized",
		report.Matched, len(report.Outcomes), report.Coverage()*100, report.Recognized)
	if len(mismatches) == 0 {
		fmt.Fprintln(out, cli.FormatSuccess(summary))
		return nil
	}
	fmt.Fprintln(out, cli.FormatInfo(summary))

	if strict {
		return fmt.Errorf("%d examples did not match", len(mismatches))
	}
	return nil
}
