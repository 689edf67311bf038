package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"boekhouder/internal/finance"
	"boekhouder/internal/logger"
)

var kiaCmd = &cobra.Command{
	Use:   "kia",
	Short: "Compute the small-business investment deduction (KIA)",
	Long: `Compute the kleinschaligheidsinvesteringsaftrek for one year.

By default the qualifying investments of the year are read from the ledger.
Assets below the minimum item value do not count. With --amount the deduction
is computed for the given total without reading the ledger.`,
	Example: `  # Deduction for the investments of 2024
  boekhouder kia --year 2024

  # What-if for a total of 50.000 euro
  boekhouder kia --amount 50000`,
	RunE: runKIA,
}

func init() {
	rootCmd.AddCommand(kiaCmd)

	kiaCmd.Flags().Int("year", 0, "Year (default: current year)")
	kiaCmd.Flags().Float64("amount", 0, "Compute for this qualifying total instead of the ledger")
}

func runKIA(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("kia")

	cfg, err := currentConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("amount") {
		amount, _ := cmd.Flags().GetFloat64("amount")
		writeLine(cmd.OutOrStdout(), "Investeringen", amount)
		writeLine(cmd.OutOrStdout(), "KIA-aftrek", finance.KIA(amount, cfg.KIA))
		return nil
	}

	year, err := yearFlag(cmd, true)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	l, _, err := loadLedger(ctx, cfg)
	if err != nil {
		return err
	}
	l = finance.FilterYear(l, year)

	qualifying := finance.QualifyingInvestmentTotal(l.Investments, cfg.KIA)
	deduction := finance.KIA(qualifying, cfg.KIA)

	log.Info().
		Int("year", year).
		Int("investments", len(l.Investments)).
		Float64("qualifying", qualifying).
		Float64("deduction", deduction).
		Msg("KIA calculated")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "KIA %d\n", year)
	writeRule(out)
	writeLine(out, "Kwalificerende investeringen", qualifying)
	writeLine(out, "KIA-aftrek", deduction)
	return nil
}
