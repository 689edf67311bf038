package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"boekhouder/internal/advice"
	"boekhouder/internal/finance"
	"boekhouder/internal/logger"
)

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Ask ChatGPT for advice on the year figures",
	Long: `Send the financial summary of a year and the VAT return of its latest quarter
to ChatGPT and print the advice it gives (in Dutch).

Required environment variables:
  OPENAI_API_KEY - OpenAI API key
  OPENAI_MODEL - Model name (optional, default gpt-4o-mini)`,
	Example: `  boekhouder advice --year 2024`,
	RunE:    runAdvice,
}

func init() {
	rootCmd.AddCommand(adviceCmd)

	adviceCmd.Flags().Int("year", 0, "Year (default: current year)")
}

func runAdvice(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("advice")

	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireOpenAI(); err != nil {
		return err
	}
	year, err := yearFlag(cmd, true)
	if err != nil {
		return err
	}

	quarter := 4
	if now := time.Now(); year == now.Year() {
		quarter = quarterOf(now)
	}

	svc, err := advice.NewService(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	l, _, err := loadLedger(ctx, cfg)
	if err != nil {
		return err
	}

	report := finance.CalculateVatReport(l.Invoices, l.Expenses, year, quarter, cfg.Periods, cfg.VATRates)
	summary := finance.SummarizeLedger(finance.FilterYear(l, year), cfg.KIA)

	log.Info().Int("year", year).Int("quarter", quarter).Msg("Requesting advice")

	text, err := svc.GenerateAdvice(ctx, summary, report)
	if err != nil {
		return fmt.Errorf("failed to generate advice: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Advies %d\n\n%s\n", year, text)
	return nil
}
