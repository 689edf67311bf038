package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a Dutch formatted amount such as "€ 1.234,56" or "-12,50".
// A single dot followed by exactly three digits is read as a thousands separator,
// any other single dot as the decimal point. Empty input is 0.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return 0, nil
	}

	cleaned = strings.ReplaceAll(cleaned, "€", "")
	cleaned = strings.ReplaceAll(cleaned, "EUR", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "\u00a0", "")

	switch {
	case strings.Contains(cleaned, ","):
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case strings.Count(cleaned, ".") > 1:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	case strings.Count(cleaned, ".") == 1:
		if i := strings.Index(cleaned, "."); len(cleaned)-i-1 == 3 {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d.InexactFloat64(), nil
}

var dateLayouts = []string{
	"2006-01-02", // ISO
	"02-01-2006", // dd-mm-yyyy
	"2-1-2006",
	"02.01.2006", // dd.mm.yyyy
	"2.1.2006",
	"02/01/2006",
}

// ParseDate normalizes a date cell to ISO YYYY-MM-DD.
func ParseDate(s string) (string, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return "", fmt.Errorf("empty date string")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}

	return "", fmt.Errorf("unable to parse date: %s", s)
}

// ParsePercentage parses "21", "21%" or "9,5" as a plain number.
func ParsePercentage(s string) (float64, error) {
	return ParseAmount(strings.TrimSuffix(strings.TrimSpace(s), "%"))
}

// ParseSplit parses a shareholder split such as "sh1:60;sh2:40" into id -> percentage.
// An empty cell yields a nil map.
func ParseSplit(s string) (map[string]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	split := make(map[string]float64)
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, pct, ok := strings.Cut(part, ":")
		if !ok || strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("malformed split entry %q", part)
		}
		value, err := ParsePercentage(pct)
		if err != nil {
			return nil, fmt.Errorf("split entry %q: %w", part, err)
		}
		split[strings.TrimSpace(id)] = value
	}
	return split, nil
}

// getString safely extracts a string value from a row slice
func getString(row []interface{}, index int) string {
	if index >= len(row) || row[index] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[index]))
}
