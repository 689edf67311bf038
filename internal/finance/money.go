package finance

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Amounts is an amount split into its net, VAT and gross parts
type Amounts struct {
	Net   float64
	VAT   float64
	Gross float64
}

// SplitVAT splits amount at the given VAT percentage. When includesVAT is set the
// amount is treated as gross, otherwise as net. Net + VAT always equals Gross up to
// floating point error.
func SplitVAT(amount float64, includesVAT bool, rate float64) Amounts {
	if includesVAT {
		net := amount / (1 + rate/100)
		return Amounts{Net: net, VAT: amount - net, Gross: amount}
	}
	vat := amount * rate / 100
	return Amounts{Net: amount, VAT: vat, Gross: amount + vat}
}

// Round rounds to whole cents, half away from zero. NaN and Inf are returned as is.
func Round(v float64) float64 {
	if !isFinite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FormatEuro renders v in Dutch notation, e.g. "€ 1.234,56" or "€ -12,50"
func FormatEuro(v float64) string {
	if !isFinite(v) {
		return "€ " + nonFiniteName(v)
	}
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return "€ " + sign + groupThousands(whole) + "," + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// nonFiniteName names values decimal cannot represent
func nonFiniteName(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	default:
		return "-Inf"
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
