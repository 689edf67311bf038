package finance

import "boekhouder/pkg/models"

// KIA returns the investment deduction for a yearly qualifying total. Bracket upper
// bounds are inclusive and checked in ascending order, so the deduction jumps from
// Bracket1Max*PctLow to FixedMid just above Bracket1Max.
func KIA(total float64, rules KIARules) float64 {
	switch {
	case total < rules.ThresholdMin:
		return 0
	case total <= rules.Bracket1Max:
		return total * rules.PctLow
	case total <= rules.Bracket2Max:
		return rules.FixedMid
	case total <= rules.Bracket3Max:
		return rules.FixedMid - (total-rules.Bracket2Max)*rules.ReductionPct
	default:
		return 0
	}
}

// QualifyingInvestmentTotal sums the purchase value of every investment at or above
// the minimum item value. It does not filter by year; callers scope the slice.
func QualifyingInvestmentTotal(investments []models.Investment, rules KIARules) float64 {
	var total float64
	for _, inv := range investments {
		if inv.PurchaseValue >= rules.MinItemValue {
			total += inv.PurchaseValue
		}
	}
	return total
}
