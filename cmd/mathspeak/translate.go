// Package main contains the mathspeak CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/mathspeak/internal/cli"
	"github.com/Veraticus/mathspeak/internal/common"
	"github.com/Veraticus/mathspeak/internal/engine"
	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/Veraticus/mathspeak/internal/practice"
	"github.com/spf13/cobra"
)

// defaultSuggestedDrills is how many practice questions follow a translation.
const defaultSuggestedDrills = 3

type translateOutput struct {
	Phrase   string                  `json:"phrase"`
	Result   model.TranslationResult `json:"result"`
	Practice []model.PracticeItem    `json:"practice,omitempty"`
}

func translateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <phrase...>",
		Short: "Translate a phrase into an expression",
		Long: `Translate a math phrase into plain and typeset expressions, explain
how it was read, and suggest a few practice questions for the same pattern.

Examples:
  mathspeak translate 5 less than a number
  mathspeak translate "the quotient of x and 4" --json
  mathspeak translate twice a number --practice 0`,
		Args: cobra.MinimumNArgs(1),
		RunE: runTranslate,
	}

	cmd.Flags().Bool("json", false, "Print the result as JSON")
	cmd.Flags().Bool("no-history", false, "Do not record this translation")
	cmd.Flags().Int("practice", defaultSuggestedDrills, "Number of practice questions to suggest")

	return cmd
}

func runTranslate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	asJSON, _ := cmd.Flags().GetBool("json")
	noHistory, _ := cmd.Flags().GetBool("no-history")
	drills, _ := cmd.Flags().GetInt("practice")

	phrase := strings.Join(args, " ")

	eng, cleanup, err := initEngine(ctx, func(c *engine.Config) {
		if noHistory {
			c.HistoryEnabled = false
		}
	})
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := eng.Translate(ctx, phrase)
	if err != nil {
		if errors.Is(err, common.ErrEmptyPhrase) {
			return common.NewUserError("Please enter a phrase to translate", err)
		}
		return err
	}

	var items []model.PracticeItem
	if drills > 0 {
		items = eng.Practice(drillPattern(result, eng.Config().DefaultPattern), drills)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, translateOutput{Phrase: phrase, Result: result, Practice: items})
	}

	fmt.Fprintln(out, cli.RenderTranslation(phrase, result))
	if len(items) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.FormatTitle("Try these"))
		for i, item := range items {
			fmt.Fprintf(out, "  %d. %s\n", i+1, item.Phrase)
		}
	}
	return nil
}

// drillPattern picks the pattern to practice after a translation, falling
// back when the matched pattern has no drill.
func drillPattern(result model.TranslationResult, fallback model.PatternID) model.PatternID {
	if practice.IsSupported(result.PatternID) {
		return result.PatternID
	}
	return fallback
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
