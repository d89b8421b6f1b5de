package main

import (
	"fmt"

	"github.com/Veraticus/mathspeak/internal/cli"
	"github.com/Veraticus/mathspeak/internal/storage"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent translations",
		Long: fmt.Sprintf(`Show recently translated phrases, newest first. At most %d are kept.`,
			storage.MaxHistoryEntries),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			limit, _ := cmd.Flags().GetInt("limit")

			eng, cleanup, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := eng.History(ctx, limit)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().IntP("limit", "l", 20, "Maximum number of entries to show")
	cmd.AddCommand(historyClearCmd())

	return cmd
}

func historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget all recorded translations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, cleanup, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.ClearHistory(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("History cleared"))
			return nil
		},
	}
}
