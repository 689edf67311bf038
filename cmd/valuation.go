package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"boekhouder/internal/finance"
	"boekhouder/internal/logger"
)

var valuationCmd = &cobra.Command{
	Use:   "valuation",
	Short: "Compute the company value and each shareholder's share",
	Long: `Compute the company value as profit plus total investments minus the VAT
balance plus the manual correction from the settings sheet, and split it by each
shareholder's default percentage. Percentages are used as entered and need not
add up to 100.`,
	Example: `  boekhouder valuation --year 2024`,
	RunE:    runValuation,
}

func init() {
	rootCmd.AddCommand(valuationCmd)

	valuationCmd.Flags().Int("year", 0, "Only include records of this year")
}

func runValuation(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("valuation")

	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	year, err := yearFlag(cmd, false)
	if err != nil {
		return err
	}

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
	valuation := finance.CalculateValuation(summary, l.Settings.ManualCorrection, l.Shareholders)

	log.Info().
		Int("year", year).
		Float64("company_value", valuation.CompanyValue).
		Int("shareholders", len(valuation.Shares)).
		Msg("Valuation calculated")

	writeValuation(cmd.OutOrStdout(), valuation)
	return nil
}
