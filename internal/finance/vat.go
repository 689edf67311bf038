package finance

import "boekhouder/pkg/models"

// CalculateVatReport builds the VAT return for one quarter.
//
// Every SALES invoice dated inside the quarter counts, whatever its status. This
// differs from CalculateSummary, which leaves out drafts. Zero-rated lines are not
// reported. Input VAT is the sum of VATAmount over expenses in the same window.
// An unknown quarter yields an all-zero report.
func CalculateVatReport(invoices []models.Invoice, expenses []models.Expense, year, quarter int, periods Periods, rates VATRates) models.VatReport {
	report := models.VatReport{Year: year, Quarter: quarter}

	start, end, ok := QuarterWindow(periods, year, quarter)
	if !ok {
		return report
	}

	for _, inv := range invoices {
		if !inv.IsSales() || !inWindow(inv.Date, start, end) {
			continue
		}
		for _, line := range inv.Lines {
			switch line.VATRate {
			case rates.High:
				report.TurnoverHigh += line.Amount
				report.VATHigh += line.Amount * float64(rates.High) / 100
			case rates.Low:
				report.TurnoverLow += line.Amount
				report.VATLow += line.Amount * float64(rates.Low) / 100
			}
		}
	}

	for _, exp := range expenses {
		if inWindow(exp.Date, start, end) {
			report.VATDeductible += exp.VATAmount
		}
	}

	report.TotalPayable = report.VATHigh + report.VATLow - report.VATDeductible
	return report
}
