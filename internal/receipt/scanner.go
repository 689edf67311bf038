// Package receipt extracts expenses from scanned receipts and purchase invoices
// with Google Document AI.
package receipt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"github.com/googleapis/gax-go/v2"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"boekhouder/internal/logger"
	"boekhouder/pkg/models"
)

// MaxDocumentSizeBytes is the maximum document size for online processing (20MB)
const MaxDocumentSizeBytes = 20 * 1024 * 1024

// Processor is the part of the Document AI client the scanner uses
type Processor interface {
	ProcessDocument(ctx context.Context, req *documentaipb.ProcessRequest, opts ...gax.CallOption) (*documentaipb.ProcessResponse, error)
}

// Config selects the Document AI processor
type Config struct {
	ProjectID   string
	Location    string // "eu" or "us"
	ProcessorID string
	Credentials []byte // Service account JSON, nil for application default credentials
	Timeout     time.Duration
}

// ProcessorName returns the fully qualified processor resource name
func (c Config) ProcessorName() string {
	return fmt.Sprintf("projects/%s/locations/%s/processors/%s", c.ProjectID, c.Location, c.ProcessorID)
}

// Scanner turns receipt PDFs into expenses
type Scanner struct {
	processor Processor
	closer    func() error
	config    Config
	log       zerolog.Logger
}

// NewScanner creates a scanner backed by a Document AI client on the regional endpoint
func NewScanner(ctx context.Context, cfg Config) (*Scanner, error) {
	const op = "NewScanner"

	if cfg.Location == "" {
		cfg.Location = "eu"
	}

	clientOptions := []option.ClientOption{
		option.WithEndpoint(fmt.Sprintf("%s-documentai.googleapis.com:443", cfg.Location)),
	}
	if len(cfg.Credentials) > 0 {
		clientOptions = append(clientOptions, option.WithCredentialsJSON(cfg.Credentials))
	}

	client, err := documentai.NewDocumentProcessorClient(ctx, clientOptions...)
	if err != nil {
		return nil, &ScanError{Op: op, Err: fmt.Errorf("failed to create Document AI client for location %s: %w", cfg.Location, err)}
	}

	s := NewScannerWithProcessor(cfg, client)
	s.closer = client.Close
	return s, nil
}

// NewScannerWithProcessor creates a scanner around an existing processor
func NewScannerWithProcessor(cfg Config, processor Processor) *Scanner {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Scanner{
		processor: processor,
		config:    cfg,
		log:       logger.WithComponent("receipt-scanner"),
	}
}

// Close releases the Document AI client
func (s *Scanner) Close() error {
	if s.closer != nil {
		return s.closer()
	}
	return nil
}

// ScanFile reads and scans a single PDF
func (s *Scanner) ScanFile(ctx context.Context, path string) (models.Expense, error) {
	const op = "ScanFile"

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Expense{}, &ScanError{Op: op, File: path, Err: err}
	}

	expense, err := s.Scan(ctx, data)
	if err != nil {
		return models.Expense{}, &ScanError{Op: op, File: path, Err: err}
	}
	return expense, nil
}

// Scan sends a PDF to Document AI and converts the recognized entities into an expense
func (s *Scanner) Scan(ctx context.Context, pdf []byte) (models.Expense, error) {
	if err := validatePDF(pdf); err != nil {
		return models.Expense{}, err
	}

	processCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	req := &documentaipb.ProcessRequest{
		Name: s.config.ProcessorName(),
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  pdf,
				MimeType: "application/pdf",
			},
		},
	}

	s.log.Debug().
		Str("processor", req.Name).
		Int("bytes", len(pdf)).
		Msg("Sending receipt to Document AI")

	resp, err := s.processor.ProcessDocument(processCtx, req)
	if err != nil {
		return models.Expense{}, fmt.Errorf("%w: %v", ErrProcessingFailed, err)
	}
	if resp.GetDocument() == nil {
		return models.Expense{}, fmt.Errorf("%w: no document in response", ErrProcessingFailed)
	}

	expense, err := ExpenseFromDocument(resp.GetDocument())
	if err != nil {
		return models.Expense{}, err
	}

	s.log.Info().
		Str("date", expense.Date).
		Str("supplier", expense.Description).
		Float64("net_amount", expense.AmountExcl).
		Float64("vat_amount", expense.VATAmount).
		Msg("Receipt scanned")

	return expense, nil
}

func validatePDF(data []byte) error {
	if len(data) > MaxDocumentSizeBytes {
		return fmt.Errorf("%w: %d bytes", ErrDocumentTooLarge, len(data))
	}
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		return fmt.Errorf("%w: missing PDF header", ErrInvalidPDF)
	}
	return nil
}

// FindPDFFiles returns path itself when it is a file, or every PDF below it when it is a folder
func FindPDFFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var pdfFiles []string
	err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(strings.ToLower(info.Name()), ".pdf") {
			pdfFiles = append(pdfFiles, p)
		}
		return nil
	})
	return pdfFiles, err
}
