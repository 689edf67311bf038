package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"boekhouder/internal/finance"
	"boekhouder/internal/logger"
)

// ErrMissingSetting is returned by the Require* helpers when a command needs a
// value that is not configured.
var ErrMissingSetting = errors.New("missing required setting")

type Config struct {
	// Google Sheets ledger
	GoogleSheetURL       string
	InvoiceSheet         string
	InvoiceLineSheet     string
	ExpenseSheet         string
	InvestmentSheet      string
	ShareholderSheet     string
	RelationSheet        string
	SettingsSheet        string
	VatReturnSheet       string
	GoogleCredentialFile string
	GoogleCredentialJSON string

	// OpenAI Configuration
	OpenAIAPIKey string
	OpenAIModel  string

	// Document AI receipt scanning
	GoogleCloudProject    string
	GoogleCloudLocation   string
	DocumentAIProcessorID string
	ReceiptWorkers        int

	// Tax rules, passed verbatim into the calculations
	KIA      finance.KIARules
	VATRates finance.VATRates
	Periods  finance.Periods

	// ManualCorrection is used when the ledger has no settings sheet value
	ManualCorrection float64

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		GoogleSheetURL:        getEnv("GOOGLE_SHEET_URL", ""),
		InvoiceSheet:          getEnv("SHEET_INVOICES", "Facturen"),
		InvoiceLineSheet:      getEnv("SHEET_INVOICE_LINES", "Factuurregels"),
		ExpenseSheet:          getEnv("SHEET_EXPENSES", "Uitgaven"),
		InvestmentSheet:       getEnv("SHEET_INVESTMENTS", "Investeringen"),
		ShareholderSheet:      getEnv("SHEET_SHAREHOLDERS", "Aandeelhouders"),
		RelationSheet:         getEnv("SHEET_RELATIONS", "Relaties"),
		SettingsSheet:         getEnv("SHEET_SETTINGS", "Instellingen"),
		VatReturnSheet:        getEnv("SHEET_VAT_RETURN", "BTW-aangifte"),
		GoogleCredentialFile:  getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		GoogleCredentialJSON:  getEnv("GOOGLE_CREDENTIALS", ""),
		OpenAIAPIKey:          getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:           getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GoogleCloudProject:    getEnv("GOOGLE_CLOUD_PROJECT", ""),
		GoogleCloudLocation:   getEnv("GOOGLE_CLOUD_LOCATION", "eu"),
		DocumentAIProcessorID: getEnv("DOCUMENT_AI_PROCESSOR_ID", ""),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:         getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:             getEnv("LOG_OUTPUT", "stderr"),
	}

	var p envParser
	config.ReceiptWorkers = p.parseInt("RECEIPT_WORKERS", 4)
	config.ManualCorrection = p.parseFloat("MANUAL_CORRECTION", 0)

	kia := finance.DefaultKIARules()
	config.KIA = finance.KIARules{
		ThresholdMin: p.parseFloat("KIA_THRESHOLD_MIN", kia.ThresholdMin),
		MinItemValue: p.parseFloat("KIA_MIN_ITEM_VALUE", kia.MinItemValue),
		Bracket1Max:  p.parseFloat("KIA_BRACKET_1_MAX", kia.Bracket1Max),
		Bracket2Max:  p.parseFloat("KIA_BRACKET_2_MAX", kia.Bracket2Max),
		Bracket3Max:  p.parseFloat("KIA_BRACKET_3_MAX", kia.Bracket3Max),
		PctLow:       p.parseFloat("KIA_PCT_LOW", kia.PctLow),
		FixedMid:     p.parseFloat("KIA_FIXED_MID", kia.FixedMid),
		ReductionPct: p.parseFloat("KIA_REDUCTION_PCT", kia.ReductionPct),
	}

	rates := finance.DefaultVATRates()
	config.VATRates = finance.VATRates{
		Zero: 0,
		Low:  p.parseInt("VAT_RATE_LOW", rates.Low),
		High: p.parseInt("VAT_RATE_HIGH", rates.High),
	}

	if err := p.err; err != nil {
		return nil, fmt.Errorf("config parsing failed: %w", err)
	}

	periods, err := ParsePeriods(getEnv("VAT_PERIODS", ""))
	if err != nil {
		return nil, fmt.Errorf("config parsing failed: %w", err)
	}
	config.Periods = periods

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	k := c.KIA
	if !(k.ThresholdMin <= k.Bracket1Max && k.Bracket1Max <= k.Bracket2Max && k.Bracket2Max <= k.Bracket3Max) {
		return fmt.Errorf("KIA brackets must be ascending: %v <= %v <= %v <= %v",
			k.ThresholdMin, k.Bracket1Max, k.Bracket2Max, k.Bracket3Max)
	}
	if c.VATRates.Low <= 0 || c.VATRates.High <= c.VATRates.Low {
		return fmt.Errorf("VAT rates must satisfy 0 < low < high, got low=%d high=%d", c.VATRates.Low, c.VATRates.High)
	}
	if c.ReceiptWorkers <= 0 {
		return fmt.Errorf("RECEIPT_WORKERS must be positive, got %d", c.ReceiptWorkers)
	}
	return nil
}

// RequireSheet checks the settings needed to read or write the ledger
func (c *Config) RequireSheet() error {
	if c.GoogleSheetURL == "" {
		return fmt.Errorf("%w: GOOGLE_SHEET_URL", ErrMissingSetting)
	}
	if c.GoogleCredentialFile == "" && c.GoogleCredentialJSON == "" {
		return fmt.Errorf("%w: GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS", ErrMissingSetting)
	}
	return nil
}

// RequireOpenAI checks the settings needed for generated advice
func (c *Config) RequireOpenAI() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("%w: OPENAI_API_KEY", ErrMissingSetting)
	}
	return nil
}

// RequireDocumentAI checks the settings needed for receipt scanning
func (c *Config) RequireDocumentAI() error {
	if c.GoogleCloudProject == "" {
		return fmt.Errorf("%w: GOOGLE_CLOUD_PROJECT", ErrMissingSetting)
	}
	if c.DocumentAIProcessorID == "" {
		return fmt.Errorf("%w: DOCUMENT_AI_PROCESSOR_ID", ErrMissingSetting)
	}
	return nil
}

// GoogleCredentials returns the service account key, preferring the file
func (c *Config) GoogleCredentials() ([]byte, error) {
	if c.GoogleCredentialFile != "" {
		creds, err := os.ReadFile(c.GoogleCredentialFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		return creds, nil
	}
	if c.GoogleCredentialJSON != "" {
		return []byte(c.GoogleCredentialJSON), nil
	}
	return nil, fmt.Errorf("%w: GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS", ErrMissingSetting)
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

// ParsePeriods parses a quarter table such as "1:01-03,2:04-06,3:07-09,4:10-12".
// An empty string yields the calendar quarters.
func ParsePeriods(table string) (finance.Periods, error) {
	if strings.TrimSpace(table) == "" {
		return finance.DefaultPeriods(), nil
	}

	periods := finance.Periods{}
	for _, part := range strings.Split(table, ",") {
		quarterStr, months, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("VAT_PERIODS: entry %q must look like 1:01-03", part)
		}
		quarter, err := strconv.Atoi(quarterStr)
		if err != nil || quarter < 1 {
			return nil, fmt.Errorf("VAT_PERIODS: invalid quarter %q", quarterStr)
		}
		start, end, ok := strings.Cut(months, "-")
		if !ok || !isMonth(start) || !isMonth(end) || start > end {
			return nil, fmt.Errorf("VAT_PERIODS: invalid month range %q", months)
		}
		periods[quarter] = finance.MonthRange{Start: start, End: end}
	}
	return periods, nil
}

func isMonth(s string) bool {
	if len(s) != 2 {
		return false
	}
	m, err := strconv.Atoi(s)
	return err == nil && m >= 1 && m <= 12
}

// envParser reads numeric variables and keeps the first parse error
type envParser struct {
	err error
}

func (p *envParser) parseFloat(key string, defaultValue float64) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = errors.New("not a finite number")
	}
	if err != nil {
		if p.err == nil {
			p.err = fmt.Errorf("%s=%q: %w", key, raw, err)
		}
		return defaultValue
	}
	return v
}

func (p *envParser) parseInt(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		if p.err == nil {
			p.err = fmt.Errorf("%s=%q: %w", key, raw, err)
		}
		return defaultValue
	}
	return v
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
