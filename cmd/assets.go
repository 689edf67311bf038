package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"boekhouder/internal/finance"
	"boekhouder/internal/ledger"
	"boekhouder/internal/logger"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List investments with their book value",
	Long: `List every investment with its straight-line book value, never below the
residual value. Investments with an unreadable acquisition date show NaN.`,
	Example: `  # Book values today
  boekhouder assets

  # Book values at the end of 2024
  boekhouder assets --at 31-12-2024`,
	RunE: runAssets,
}

func init() {
	rootCmd.AddCommand(assetsCmd)

	assetsCmd.Flags().String("at", "", "Reference date (default: today)")
}

func runAssets(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("assets")

	cfg, err := currentConfig()
	if err != nil {
		return err
	}

	at := time.Now()
	if atStr, _ := cmd.Flags().GetString("at"); atStr != "" {
		iso, err := ledger.ParseDate(atStr)
		if err != nil {
			return fmt.Errorf("invalid --at date: %w", err)
		}
		at, _ = time.Parse("2006-01-02", iso)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	l, _, err := loadLedger(ctx, cfg)
	if err != nil {
		return err
	}

	assets, total := finance.AssetRegister(l.Investments, at)

	log.Info().
		Int("assets", len(assets)).
		Float64("total_book_value", total).
		Msg("Asset register calculated")

	writeAssets(cmd.OutOrStdout(), assets, total, at)
	return nil
}
