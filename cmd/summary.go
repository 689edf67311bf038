package cmd

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"boekhouder/internal/finance"
	"boekhouder/internal/logger"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show revenue, costs, profit, VAT and KIA",
	Long: `Show the financial summary of the ledger: revenue and output VAT of sent
sales invoices (drafts excluded), expenses and input VAT, investments, profit,
the VAT balance and the KIA deduction.

Without --year every record in the ledger is included.`,
	Example: `  # Summary of 2024
  boekhouder summary --year 2024

  # Machine readable
  boekhouder summary --year 2024 --json`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().Int("year", 0, "Only include records of this year")
	summaryCmd.Flags().Bool("json", false, "Print the summary as JSON")
}

func runSummary(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("summary")

	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	year, err := yearFlag(cmd, false)
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	l, _, err := loadLedger(ctx, cfg)
	if err != nil {
		return err
	}
	if year > 0 {
		l = finance.FilterYear(l, year)
	}

	summary := finance.SummarizeLedger(l, cfg.KIA)

	log.Info().
		Int("year", year).
		Float64("revenue", summary.Revenue).
		Float64("profit", summary.Profit).
		Msg("Financial summary calculated")

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	writeSummary(cmd.OutOrStdout(), summary, year)
	return nil
}
