package sheets

import (
	"context"
	"time"

	"boekhouder/internal/finance"
	"boekhouder/pkg/models"
)

// VatReturnHeaders is the header row of the VAT return sheet
var VatReturnHeaders = []interface{}{
	"Jaar", "Kwartaal", "Omzet hoog", "BTW hoog", "Omzet laag", "BTW laag",
	"Voorbelasting", "Te betalen", "Berekend op",
}

// ExpenseHeaders is the header row of the expense sheet, in the column order the
// ledger reader expects.
var ExpenseHeaders = []interface{}{
	"Datum", "Omschrijving", "Bedrag excl.", "BTW", "ID",
}

// WriteVatReport appends one quarter's VAT return to sheetName
func (s *Service) WriteVatReport(ctx context.Context, sheetName string, report models.VatReport, computedAt time.Time) error {
	return s.AppendRows(ctx, sheetName, VatReturnHeaders, [][]interface{}{vatReportRow(report, computedAt)})
}

// AppendExpenses appends expenses to sheetName
func (s *Service) AppendExpenses(ctx context.Context, sheetName string, expenses []models.Expense) error {
	rows := make([][]interface{}, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, expenseRow(e))
	}
	return s.AppendRows(ctx, sheetName, ExpenseHeaders, rows)
}

func vatReportRow(r models.VatReport, computedAt time.Time) []interface{} {
	return []interface{}{
		r.Year,                                   // A: Jaar
		r.Quarter,                                // B: Kwartaal
		finance.Round(r.TurnoverHigh),            // C: Omzet hoog
		finance.Round(r.VATHigh),                 // D: BTW hoog
		finance.Round(r.TurnoverLow),             // E: Omzet laag
		finance.Round(r.VATLow),                  // F: BTW laag
		finance.Round(r.VATDeductible),           // G: Voorbelasting
		finance.Round(r.TotalPayable),            // H: Te betalen
		computedAt.Format("2006-01-02 15:04:05"), // I: Berekend op
	}
}

func expenseRow(e models.Expense) []interface{} {
	return []interface{}{
		e.Date,                      // A: Datum
		e.Description,               // B: Omschrijving
		finance.Round(e.AmountExcl), // C: Bedrag excl.
		finance.Round(e.VATAmount),  // D: BTW
		e.ID,                        // E: ID
	}
}
