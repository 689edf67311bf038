package finance

import "fmt"

// KIARules holds the bracket constants of the small-business investment deduction
// for one tax year.
type KIARules struct {
	ThresholdMin float64 // Minimum total investment before any deduction applies
	MinItemValue float64 // Minimum purchase value for an asset to qualify
	Bracket1Max  float64
	Bracket2Max  float64
	Bracket3Max  float64
	PctLow       float64 // Percentage applied up to Bracket1Max
	FixedMid     float64 // Flat deduction up to Bracket2Max
	ReductionPct float64 // Phase-out rate above Bracket2Max
}

// DefaultKIARules returns the 2024 bracket values
func DefaultKIARules() KIARules {
	return KIARules{
		ThresholdMin: 2801,
		MinItemValue: 450,
		Bracket1Max:  69765,
		Bracket2Max:  129194,
		Bracket3Max:  387580,
		PctLow:       0.28,
		FixedMid:     19535,
		ReductionPct: 0.0756,
	}
}

// VATRates lists the Dutch VAT percentages
type VATRates struct {
	Zero int
	Low  int
	High int
}

// DefaultVATRates returns 0, 9 and 21 percent
func DefaultVATRates() VATRates {
	return VATRates{Zero: 0, Low: 9, High: 21}
}

// Allowed reports whether rate is one of the configured percentages
func (r VATRates) Allowed(rate int) bool {
	return rate == r.Zero || rate == r.Low || rate == r.High
}

// MonthRange is the first and last month of a filing period, as two-digit strings
type MonthRange struct {
	Start string
	End   string
}

// Periods maps quarter number (1-4) to its month range
type Periods map[int]MonthRange

// DefaultPeriods returns the four calendar quarters
func DefaultPeriods() Periods {
	return Periods{
		1: {Start: "01", End: "03"},
		2: {Start: "04", End: "06"},
		3: {Start: "07", End: "09"},
		4: {Start: "10", End: "12"},
	}
}

// QuarterWindow returns the inclusive ISO date bounds of a quarter. The end day is
// always "31"; dates are compared as strings so shorter months still fall inside.
// ok is false when the quarter is not in the table.
func QuarterWindow(periods Periods, year, quarter int) (start, end string, ok bool) {
	months, ok := periods[quarter]
	if !ok {
		return "", "", false
	}
	start = fmt.Sprintf("%04d-%s-01", year, months.Start)
	end = fmt.Sprintf("%04d-%s-31", year, months.End)
	return start, end, true
}

func inWindow(date, start, end string) bool {
	return date >= start && date <= end
}
