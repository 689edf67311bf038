package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boekhouder/pkg/models"
)

func salesInvoice(number, date string, status models.InvoiceStatus, lines ...models.InvoiceLine) models.Invoice {
	return models.Invoice{
		Number: number,
		Type:   models.InvoiceTypeSales,
		Date:   date,
		Status: status,
		Lines:  lines,
	}
}

func TestQuarterWindow(t *testing.T) {
	tests := []struct {
		quarter    int
		start, end string
	}{
		{1, "2024-01-01", "2024-03-31"},
		{2, "2024-04-01", "2024-06-31"},
		{3, "2024-07-01", "2024-09-31"},
		{4, "2024-10-01", "2024-12-31"},
	}
	for _, tt := range tests {
		start, end, ok := QuarterWindow(DefaultPeriods(), 2024, tt.quarter)
		assert.True(t, ok)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
	}

	_, _, ok := QuarterWindow(DefaultPeriods(), 2024, 5)
	assert.False(t, ok)
}

func TestCalculateVatReport(t *testing.T) {
	periods, rates := DefaultPeriods(), DefaultVATRates()

	t.Run("two rates and one expense", func(t *testing.T) {
		invoices := []models.Invoice{
			salesInvoice("2024-001", "2024-01-15", models.InvoiceStatusSent, models.InvoiceLine{Amount: 100, VATRate: 21}),
			salesInvoice("2024-002", "2024-02-20", models.InvoiceStatusPaid, models.InvoiceLine{Amount: 200, VATRate: 9}),
		}
		expenses := []models.Expense{{Date: "2024-03-01", AmountExcl: 50, VATAmount: 10}}

		r := CalculateVatReport(invoices, expenses, 2024, 1, periods, rates)

		assert.Equal(t, 2024, r.Year)
		assert.Equal(t, 1, r.Quarter)
		assert.InDelta(t, 100.0, r.TurnoverHigh, 1e-9)
		assert.InDelta(t, 21.0, r.VATHigh, 1e-9)
		assert.InDelta(t, 200.0, r.TurnoverLow, 1e-9)
		assert.InDelta(t, 18.0, r.VATLow, 1e-9)
		assert.InDelta(t, 10.0, r.VATDeductible, 1e-9)
		assert.InDelta(t, 29.0, r.TotalPayable, 1e-9)
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		invoices := []models.Invoice{
			salesInvoice("a", "2024-03-31", models.InvoiceStatusSent, models.InvoiceLine{Amount: 10, VATRate: 21}),
			salesInvoice("b", "2024-01-01", models.InvoiceStatusSent, models.InvoiceLine{Amount: 20, VATRate: 21}),
			salesInvoice("c", "2024-04-01", models.InvoiceStatusSent, models.InvoiceLine{Amount: 40, VATRate: 21}),
			salesInvoice("d", "2023-12-31", models.InvoiceStatusSent, models.InvoiceLine{Amount: 80, VATRate: 21}),
		}

		r := CalculateVatReport(invoices, nil, 2024, 1, periods, rates)

		assert.InDelta(t, 30.0, r.TurnoverHigh, 1e-9)
	})

	t.Run("zero rated lines are not reported", func(t *testing.T) {
		invoices := []models.Invoice{
			salesInvoice("e", "2024-05-01", models.InvoiceStatusSent,
				models.InvoiceLine{Amount: 500, VATRate: 0},
				models.InvoiceLine{Amount: 100, VATRate: 21},
			),
		}

		r := CalculateVatReport(invoices, nil, 2024, 2, periods, rates)

		assert.InDelta(t, 100.0, r.TurnoverHigh, 1e-9)
		assert.Equal(t, 0.0, r.TurnoverLow)
	})

	t.Run("purchase invoices are ignored", func(t *testing.T) {
		purchase := salesInvoice("p", "2024-05-01", models.InvoiceStatusPaid, models.InvoiceLine{Amount: 100, VATRate: 21})
		purchase.Type = models.InvoiceTypePurchase

		r := CalculateVatReport([]models.Invoice{purchase}, nil, 2024, 2, periods, rates)

		assert.Equal(t, models.VatReport{Year: 2024, Quarter: 2}, r)
	})

	t.Run("refund position is negative", func(t *testing.T) {
		expenses := []models.Expense{
			{Date: "2024-11-02", VATAmount: 42},
			{Date: "2024-09-30", VATAmount: 1000},
		}

		r := CalculateVatReport(nil, expenses, 2024, 4, periods, rates)

		assert.InDelta(t, 42.0, r.VATDeductible, 1e-9)
		assert.InDelta(t, -42.0, r.TotalPayable, 1e-9)
	})

	t.Run("empty input gives zero report", func(t *testing.T) {
		r := CalculateVatReport(nil, nil, 2025, 3, periods, rates)
		assert.Equal(t, models.VatReport{Year: 2025, Quarter: 3}, r)
	})

	t.Run("unknown quarter gives zero report", func(t *testing.T) {
		invoices := []models.Invoice{
			salesInvoice("x", "2024-05-01", models.InvoiceStatusSent, models.InvoiceLine{Amount: 100, VATRate: 21}),
		}
		r := CalculateVatReport(invoices, nil, 2024, 0, periods, rates)
		assert.Equal(t, models.VatReport{Year: 2024, Quarter: 0}, r)
	})
}
