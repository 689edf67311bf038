package finance

import (
	"strconv"

	"boekhouder/pkg/models"
)

// CalculateSummary rolls the supplied records up into a FinancialSummary.
//
// Revenue and output VAT come from SALES invoices that are not drafts. Expenses and
// investments count unconditionally. The KIA deduction is computed over the whole
// investment slice, so pass a single year's investments (see FilterYear) to get
// the deduction for that year.
func CalculateSummary(invoices []models.Invoice, expenses []models.Expense, investments []models.Investment, manualCorrection float64, rules KIARules) models.FinancialSummary {
	var s models.FinancialSummary

	for _, inv := range invoices {
		if !inv.IsSales() || inv.Status == models.InvoiceStatusDraft {
			continue
		}
		for _, line := range inv.Lines {
			s.Revenue += line.Amount
			s.VATPayable += line.Amount * float64(line.VATRate) / 100
		}
	}

	for _, exp := range expenses {
		s.Expenses += exp.AmountExcl
		s.VATDeductible += exp.VATAmount
	}

	for _, inv := range investments {
		s.Investments += inv.PurchaseValue
	}

	s.Profit = s.Revenue - s.Expenses
	s.VATTotal = s.VATPayable - s.VATDeductible
	s.KIADeduction = KIA(QualifyingInvestmentTotal(investments, rules), rules)
	s.ManualCorrection = manualCorrection

	return s
}

// SummarizeLedger is CalculateSummary over a ledger snapshot and its settings
func SummarizeLedger(l models.Ledger, rules KIARules) models.FinancialSummary {
	return CalculateSummary(l.Invoices, l.Expenses, l.Investments, l.Settings.ManualCorrection, rules)
}

// FilterYear returns a copy of l holding only invoices, expenses and investments
// dated in year. Shareholders, relations and settings are kept.
func FilterYear(l models.Ledger, year int) models.Ledger {
	prefix := strconv.Itoa(year) + "-"
	out := models.Ledger{
		Shareholders: l.Shareholders,
		Relations:    l.Relations,
		Settings:     l.Settings,
	}
	for _, inv := range l.Invoices {
		if hasPrefix(inv.Date, prefix) {
			out.Invoices = append(out.Invoices, inv)
		}
	}
	for _, exp := range l.Expenses {
		if hasPrefix(exp.Date, prefix) {
			out.Expenses = append(out.Expenses, exp)
		}
	}
	for _, inv := range l.Investments {
		if hasPrefix(inv.Date, prefix) {
			out.Investments = append(out.Investments, inv)
		}
	}
	return out
}

func hasPrefix(date, prefix string) bool {
	return len(date) >= len(prefix) && date[:len(prefix)] == prefix
}
