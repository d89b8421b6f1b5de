package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/mathspeak/internal/cli"
	"github.com/spf13/cobra"
)

func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl"},
		Short:   "Translate phrases one line at a time",
		Long: `Read phrases from standard input and translate each one until end of
input or "quit".`,
		RunE: runInteractive,
	}
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "")
	ctx := handler.HandleInterrupts(cmd.Context())

	eng, cleanup, err := initEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	reader := cli.NewNonBlockingReader(cmd.InOrStdin())

	fmt.Fprintln(out, cli.FormatTitle("Mathspeak"))
	fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("Type a phrase, or %q to exit.", cli.CommandQuit)))

	for {
		fmt.Fprint(out, cli.FormatPrompt("Phrase"))

		line, err := reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, cli.ErrInputCancelled) || handler.WasInterrupted() {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("failed to read phrase: %w", err)
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.EqualFold(line, cli.CommandQuit):
			return nil
		}

		result, err := eng.Translate(ctx, line)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, cli.RenderTranslation(line, result))
	}
}
