package finance

import "boekhouder/pkg/models"

// InvoiceTotals returns the net, VAT and gross total of one invoice
func InvoiceTotals(inv models.Invoice) Amounts {
	var t Amounts
	for _, line := range inv.Lines {
		a := SplitVAT(line.Amount, false, float64(line.VATRate))
		t.Net += a.Net
		t.VAT += a.VAT
		t.Gross += a.Gross
	}
	return t
}

// OpenInvoices returns the sales invoices still awaiting (full) payment
func OpenInvoices(invoices []models.Invoice) []models.Invoice {
	var open []models.Invoice
	for _, inv := range invoices {
		if !inv.IsSales() {
			continue
		}
		switch inv.Status {
		case models.InvoiceStatusSent, models.InvoiceStatusPartial, models.InvoiceStatusOverdue:
			open = append(open, inv)
		}
	}
	return open
}
