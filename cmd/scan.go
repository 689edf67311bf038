package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"boekhouder/internal/config"
	"boekhouder/internal/finance"
	"boekhouder/internal/logger"
	"boekhouder/internal/receipt"
)

var scanCmd = &cobra.Command{
	Use:   "scan-receipt <pdf|folder>",
	Short: "Read expenses from receipt PDFs with Document AI",
	Long: `Read the date, supplier, net amount and VAT of one receipt PDF, or of every
PDF in a folder, with Google Document AI. Folders are processed in parallel
(RECEIPT_WORKERS, default 4). With --append the expenses are added to the
expense sheet of the ledger.

Required environment variables:
  GOOGLE_CLOUD_PROJECT - Google Cloud project ID
  DOCUMENT_AI_PROCESSOR_ID - Document AI expense or invoice processor
  GOOGLE_CLOUD_LOCATION - Processor location (optional, default eu)`,
	Example: `  # Single receipt
  boekhouder scan-receipt bonnetjes/2024-03-01-bol.pdf

  # Whole folder, saved to the spreadsheet
  boekhouder scan-receipt bonnetjes/ --append`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().Bool("append", false, "Append the scanned expenses to the expense sheet")
}

func runScan(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("scan")

	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireDocumentAI(); err != nil {
		return err
	}
	appendRows, _ := cmd.Flags().GetBool("append")

	files, err := receipt.FindPDFFiles(args[0])
	if err != nil {
		return fmt.Errorf("failed to find PDF files: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintln(out, "Geen PDF-bestanden gevonden.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout+time.Duration(len(files))*10*time.Second)
	defer cancel()

	scanner, err := receipt.NewScanner(ctx, scannerConfig(cfg))
	if err != nil {
		return err
	}
	defer scanner.Close()

	fmt.Fprintf(out, "%d PDF-bestanden verwerken met %d workers...\n", len(files), cfg.ReceiptWorkers)

	results := scanner.ScanFiles(ctx, files, cfg.ReceiptWorkers, func(done, total int, r receipt.Result) {
		var status string
		if r.Err != nil {
			status = "fout: " + r.Err.Error()
		} else {
			status = fmt.Sprintf("%s %s excl. + %s btw", r.Expense.Date,
				finance.FormatEuro(r.Expense.AmountExcl), finance.FormatEuro(r.Expense.VATAmount))
		}
		fmt.Fprintf(out, "[%d/%d] %s - %s\n", done, total, filepath.Base(r.Path), status)
	})

	expenses := receipt.Expenses(results)

	log.Info().
		Int("files", len(files)).
		Int("scanned", len(expenses)).
		Int("failed", len(files)-len(expenses)).
		Msg("Receipt scanning finished")

	if !appendRows || len(expenses) == 0 {
		return nil
	}

	svc, err := openSheets(ctx, cfg)
	if err != nil {
		return err
	}
	if err := svc.AppendExpenses(ctx, cfg.ExpenseSheet, expenses); err != nil {
		return fmt.Errorf("failed to append expenses: %w", err)
	}

	fmt.Fprintf(out, "%d uitgaven toegevoegd aan tabblad %q.\n", len(expenses), cfg.ExpenseSheet)
	return nil
}

// scannerConfig builds the Document AI settings. Without a service account key
// the client falls back to application default credentials.
func scannerConfig(cfg *config.Config) receipt.Config {
	creds, err := cfg.GoogleCredentials()
	if err != nil {
		creds = nil
	}
	return receipt.Config{
		ProjectID:   cfg.GoogleCloudProject,
		Location:    cfg.GoogleCloudLocation,
		ProcessorID: cfg.DocumentAIProcessorID,
		Credentials: creds,
		Timeout:     60 * time.Second,
	}
}
