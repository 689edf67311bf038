package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"boekhouder/internal/finance"
	"boekhouder/internal/ledger"
)

var vatSplitCmd = &cobra.Command{
	Use:   "vat-split <amount>",
	Short: "Split an amount into net, VAT and gross",
	Long: `Split an amount into its net, VAT and gross parts. The amount may use Dutch
notation (1.234,56). By default the amount is taken to exclude VAT.`,
	Example: `  # 100 euro excluding 21% VAT
  boekhouder vat-split 100

  # 121 euro including VAT
  boekhouder vat-split 121 --incl

  # Low rate
  boekhouder vat-split "54,50" --incl --rate 9`,
	Args: cobra.ExactArgs(1),
	RunE: runVatSplit,
}

func init() {
	rootCmd.AddCommand(vatSplitCmd)

	vatSplitCmd.Flags().Float64("rate", 21, "VAT percentage")
	vatSplitCmd.Flags().Bool("incl", false, "The amount includes VAT")
}

func runVatSplit(cmd *cobra.Command, args []string) error {
	amount, err := ledger.ParseAmount(args[0])
	if err != nil {
		return err
	}
	rate, _ := cmd.Flags().GetFloat64("rate")
	if rate < 0 {
		return fmt.Errorf("VAT rate must not be negative, got %g", rate)
	}
	incl, _ := cmd.Flags().GetBool("incl")

	writeSplit(cmd.OutOrStdout(), finance.SplitVAT(amount, incl, rate), rate)
	return nil
}
