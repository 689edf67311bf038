package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"boekhouder/internal/finance"
	"boekhouder/internal/logger"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "List invoices with their totals",
	Example: `  # All invoices of 2024
  boekhouder invoices --year 2024

  # Sales invoices still awaiting payment
  boekhouder invoices --open`,
	RunE: runInvoices,
}

func init() {
	rootCmd.AddCommand(invoicesCmd)

	invoicesCmd.Flags().Bool("open", false, "Only sent, partially paid or overdue sales invoices")
	invoicesCmd.Flags().Int("year", 0, "Only invoices of this year")
}

func runInvoices(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("invoices")

	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	year, err := yearFlag(cmd, false)
	if err != nil {
		return err
	}
	open, _ := cmd.Flags().GetBool("open")

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	l, _, err := loadLedger(ctx, cfg)
	if err != nil {
		return err
	}
	if year > 0 {
		l = finance.FilterYear(l, year)
	}

	invoices := l.Invoices
	if open {
		invoices = finance.OpenInvoices(invoices)
	}

	log.Info().
		Int("invoices", len(invoices)).
		Bool("open_only", open).
		Msg("Listing invoices")

	writeInvoices(cmd.OutOrStdout(), invoices)
	return nil
}
