package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"boekhouder/internal/finance"
	"boekhouder/internal/logger"
)

var vatCmd = &cobra.Command{
	Use:   "vat",
	Short: "Compute the quarterly VAT return",
	Long: `Compute the VAT return (btw-aangifte) for one quarter.

Turnover and output VAT come from sales invoices dated inside the quarter,
including drafts. Input VAT comes from expenses dated inside the quarter.
With --write the result is appended to the VAT return sheet.`,
	Example: `  # Current quarter
  boekhouder vat

  # Second quarter of 2024, saved to the spreadsheet
  boekhouder vat --year 2024 --quarter 2 --write`,
	RunE: runVat,
}

func init() {
	rootCmd.AddCommand(vatCmd)

	vatCmd.Flags().Int("year", 0, "Year (default: current year)")
	vatCmd.Flags().Int("quarter", 0, "Quarter 1-4 (default: current quarter)")
	vatCmd.Flags().Bool("write", false, "Append the return to the VAT return sheet")
}

func runVat(cmd *cobra.Command, args []string) error {
	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	year, err := yearFlag(cmd, true)
	if err != nil {
		return err
	}
	quarter, _ := cmd.Flags().GetInt("quarter")
	if quarter == 0 {
		quarter = quarterOf(time.Now())
	}
	if _, _, ok := finance.QuarterWindow(cfg.Periods, year, quarter); !ok {
		return fmt.Errorf("unknown quarter %d", quarter)
	}
	write, _ := cmd.Flags().GetBool("write")

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	l, svc, err := loadLedger(ctx, cfg)
	if err != nil {
		return err
	}

	report := finance.CalculateVatReport(l.Invoices, l.Expenses, year, quarter, cfg.Periods, cfg.VATRates)

	log := logger.WithPeriod("vat", year, quarter)
	log.Info().
		Float64("total_payable", report.TotalPayable).
		Msg("VAT return calculated")

	writeVatReport(cmd.OutOrStdout(), report, cfg.VATRates)

	if !write {
		return nil
	}

	if err := svc.WriteVatReport(ctx, cfg.VatReturnSheet, report, time.Now()); err != nil {
		return fmt.Errorf("failed to write VAT return: %w", err)
	}

	log.Info().Str("sheet", cfg.VatReturnSheet).Msg("VAT return written to Google Sheet")
	fmt.Fprintf(cmd.OutOrStdout(), "\nOpgeslagen in tabblad %q.\n", cfg.VatReturnSheet)
	return nil
}
