package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"boekhouder/internal/config"
	"boekhouder/internal/logger"
)

var version = "1.0.0"

var (
	appConfig    *config.Config
	appConfigErr error
)

var rootCmd = &cobra.Command{
	Use:   "boekhouder",
	Short: "Boekhouder - financial calculations for a Dutch small business",
	Long: `Boekhouder reads the bookkeeping of a Dutch eenmanszaak or small BV from a
Google Sheets ledger and computes the figures that matter: the quarterly VAT
return, the yearly financial summary, the small-business investment deduction
(KIA), book values of investments and the company valuation per shareholder.

Required environment variables for ledger commands:
  GOOGLE_SHEET_URL - Google Sheets URL of the ledger
  GOOGLE_APPLICATION_CREDENTIALS - Path to service account JSON file, OR
  GOOGLE_CREDENTIALS - Inline JSON credentials string`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI with the configuration loaded by main. When loading failed,
// cfgErr is reported by the first command that needs configuration.
func Execute(cfg *config.Config, cfgErr error) {
	log := logger.WithComponent("cmd")

	appConfig = cfg
	appConfigErr = cfgErr

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Fout: %v\n", err)
		os.Exit(1)
	}
}
