package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/mathspeak/internal/cli"
	"github.com/Veraticus/mathspeak/internal/common"
	"github.com/Veraticus/mathspeak/internal/config"
	"github.com/Veraticus/mathspeak/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export progress to Google Sheets",
		Long: `Write practice statistics, translation history and mistakes to a
Google Sheets spreadsheet with Summary, History and Mistakes tabs.

Authentication uses either a service account key file
(sheets.service_account_path or GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH) or an
OAuth2 client with a refresh token (sheets.client_id, sheets.client_secret,
sheets.refresh_token or the matching GOOGLE_SHEETS_* variables).`,
		RunE: runExport,
	}

	cmd.Flags().String("spreadsheet-id", "", "Existing spreadsheet to update")
	cmd.Flags().String("spreadsheet-name", "", "Name for a newly created spreadsheet")

	_ = viper.BindPFlag("sheets.spreadsheet_id", cmd.Flags().Lookup("spreadsheet-id"))
	_ = viper.BindPFlag("sheets.spreadsheet_name", cmd.Flags().Lookup("spreadsheet-name"))

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	sheetsCfg, err := config.LoadSheetsConfig(viper.GetViper())
	if err != nil {
		return common.NewUserError("Google Sheets is not configured", err)
	}

	eng, cleanup, err := initEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	writer, err := sheets.NewWriter(ctx, *sheetsCfg, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create sheets writer: %w", err)
	}

	slog.Info("Exporting progress to Google Sheets", "spreadsheet", sheetsCfg.SpreadsheetName)

	if err := eng.Export(ctx, writer); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Export complete"))
	return nil
}
