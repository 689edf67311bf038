package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boekhouder/pkg/models"
)

func TestInvoiceTotals(t *testing.T) {
	inv := salesInvoice("2024-010", "2024-06-01", models.InvoiceStatusSent,
		models.InvoiceLine{Description: "Advies", Amount: 800, VATRate: 21},
		models.InvoiceLine{Description: "Boeken", Amount: 50, VATRate: 9},
		models.InvoiceLine{Description: "Export", Amount: 150, VATRate: 0},
	)

	totals := InvoiceTotals(inv)

	assert.InDelta(t, 1000.0, totals.Net, 1e-9)
	assert.InDelta(t, 168.0+4.5, totals.VAT, 1e-9)
	assert.InDelta(t, 1172.5, totals.Gross, 1e-9)
}

func TestOpenInvoices(t *testing.T) {
	purchase := salesInvoice("in", "2024-01-01", models.InvoiceStatusSent)
	purchase.Type = models.InvoiceTypePurchase
	invoices := []models.Invoice{
		salesInvoice("draft", "2024-01-01", models.InvoiceStatusDraft),
		salesInvoice("sent", "2024-01-01", models.InvoiceStatusSent),
		salesInvoice("partial", "2024-01-01", models.InvoiceStatusPartial),
		salesInvoice("paid", "2024-01-01", models.InvoiceStatusPaid),
		salesInvoice("overdue", "2024-01-01", models.InvoiceStatusOverdue),
		purchase,
	}

	open := OpenInvoices(invoices)

	require.Len(t, open, 3)
	assert.Equal(t, "sent", open[0].Number)
	assert.Equal(t, "partial", open[1].Number)
	assert.Equal(t, "overdue", open[2].Number)
}
