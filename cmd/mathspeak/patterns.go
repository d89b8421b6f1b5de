package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/mathspeak/internal/cli"
	"github.com/Veraticus/mathspeak/internal/pattern"
	"github.com/spf13/cobra"
)

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patterns",
		Aliases: []string{"pattern"},
		Short:   "List the phrase patterns in priority order",
		Long: `List every pattern the translator knows with the trigger words that
select it. The first pattern whose trigger appears in a phrase wins.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderPatterns(pattern.Catalog()))
			return nil
		},
	}

	cmd.AddCommand(patternsTestCmd())

	return cmd
}

func patternsTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <phrase...>",
		Short: "Show which pattern a phrase selects",
		Long: `Show the pattern that fires for a phrase and any lower-priority
patterns whose triggers also appear in it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := strings.Join(args, " ")
			translator := pattern.NewTranslator()
			out := cmd.OutOrStdout()

			rule, ok := translator.Match(phrase)
			if !ok {
				fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("No pattern matches %q", pattern.Normalize(phrase))))
				return nil
			}

			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("%s fires (%s)", rule.ID, rule.Describe())))

			candidates := translator.Candidates(phrase)
			if len(candidates) > 1 {
				fmt.Fprintln(out, cli.SubtleStyle.Render("Also matching, lower priority:"))
				for _, c := range candidates[1:] {
					fmt.Fprintf(out, "  %s (%s)\n", c.ID, c.Describe())
				}
			}

			fmt.Fprintln(out, cli.RenderTranslation(phrase, translator.Translate(phrase)))
			return nil
		},
	}
}
