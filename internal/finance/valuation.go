package finance

import "boekhouder/pkg/models"

// CalculateValuation derives the company value from a summary and splits it over
// the shareholders by their default percentage. Percentages are used as given,
// without normalising to 100. A non-finite company value becomes 0.
func CalculateValuation(summary models.FinancialSummary, manualCorrection float64, shareholders []models.Shareholder) models.Valuation {
	value := summary.Profit + summary.Investments - summary.VATTotal + manualCorrection
	if !isFinite(value) {
		value = 0
	}

	v := models.Valuation{
		CompanyValue: value,
		Shares:       make([]models.ShareholderShare, 0, len(shareholders)),
	}
	for _, sh := range shareholders {
		v.Shares = append(v.Shares, models.ShareholderShare{
			Shareholder: sh,
			Amount:      value * (sh.DefaultPercentage / 100),
		})
	}
	return v
}
