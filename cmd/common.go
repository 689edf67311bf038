package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"boekhouder/internal/config"
	"boekhouder/internal/ledger"
	"boekhouder/internal/logger"
	"boekhouder/internal/sheets"
	"boekhouder/pkg/models"
)

// commandTimeout bounds every command that talks to Google or OpenAI
const commandTimeout = 2 * time.Minute

// currentConfig returns the configuration passed to Execute
func currentConfig() (*config.Config, error) {
	if appConfigErr != nil {
		return nil, fmt.Errorf("configuration could not be loaded: %w", appConfigErr)
	}
	if appConfig == nil {
		return nil, errors.New("configuration not loaded")
	}
	return appConfig, nil
}

// openSheets connects to the ledger spreadsheet
func openSheets(ctx context.Context, cfg *config.Config) (*sheets.Service, error) {
	if err := cfg.RequireSheet(); err != nil {
		return nil, err
	}
	creds, err := cfg.GoogleCredentials()
	if err != nil {
		return nil, err
	}
	svc, err := sheets.NewSheetsService(ctx, cfg.GoogleSheetURL, creds)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets service: %w", err)
	}
	return svc, nil
}

func sheetNames(cfg *config.Config) ledger.SheetNames {
	return ledger.SheetNames{
		Invoices:     cfg.InvoiceSheet,
		InvoiceLines: cfg.InvoiceLineSheet,
		Expenses:     cfg.ExpenseSheet,
		Investments:  cfg.InvestmentSheet,
		Shareholders: cfg.ShareholderSheet,
		Relations:    cfg.RelationSheet,
		Settings:     cfg.SettingsSheet,
	}
}

// loadLedger reads a full ledger snapshot. The configured manual correction is used
// when the settings sheet does not set one.
func loadLedger(ctx context.Context, cfg *config.Config) (models.Ledger, *sheets.Service, error) {
	log := logger.WithComponent("ledger")

	svc, err := openSheets(ctx, cfg)
	if err != nil {
		return models.Ledger{}, nil, err
	}

	l, err := ledger.NewReader(svc, sheetNames(cfg), cfg.VATRates).Snapshot(ctx)
	if err != nil {
		return models.Ledger{}, nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	if l.Settings.ManualCorrection == 0 && cfg.ManualCorrection != 0 {
		log.Debug().Float64("manual_correction", cfg.ManualCorrection).Msg("Using configured manual correction")
		l.Settings.ManualCorrection = cfg.ManualCorrection
	}

	return l, svc, nil
}

// yearFlag returns --year, or the current year when the flag is unset and
// defaultCurrent is true. Zero means "all years".
func yearFlag(cmd *cobra.Command, defaultCurrent bool) (int, error) {
	year, _ := cmd.Flags().GetInt("year")
	if year == 0 && defaultCurrent {
		return time.Now().Year(), nil
	}
	if year < 0 || year > 9999 {
		return 0, fmt.Errorf("invalid year %d", year)
	}
	return year, nil
}

// quarterOf returns the calendar quarter of t
func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}
