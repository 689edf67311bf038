package ledger

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boekhouder/internal/finance"
	"boekhouder/pkg/models"
)

// fakeSheets serves ranges from memory, keyed by sheet name
type fakeSheets map[string][][]interface{}

func (f fakeSheets) ReadRange(_ context.Context, rangeSpec string) ([][]interface{}, error) {
	name, _, _ := strings.Cut(rangeSpec, "!")
	values, ok := f[name]
	if !ok {
		return nil, errors.New("unable to parse range: " + rangeSpec)
	}
	return values, nil
}

func row(cells ...interface{}) []interface{} { return cells }

func fixtureSheets() fakeSheets {
	return fakeSheets{
		"Facturen": {
			row("Nummer", "Type", "Relatie", "Datum", "Status", "Verdeling"),
			row("2024-001", "VERKOOP", "Acme BV", "15-02-2024", "Verzonden", "sh1:60;sh2:40"),
			row("2024-002", "SALES", "Beta", "2024-03-01", "CONCEPT"),
			row("I-17", "inkoop", "Leverancier", "01.03.2024", "PAID"),
			row("2024-003", "VERKOOP", "Gamma", "2024-03-05", "onbekend"),
			row("", "VERKOOP", "Delta", "2024-03-05", "SENT"),
		},
		"Factuurregels": {
			row("Factuurnummer", "Omschrijving", "Bedrag", "BTW%"),
			row("2024-001", "Advies", "1.000,00", "21"),
			row("2024-001", "Boeken", "200", "9%"),
			row("2024-002", "Concept", "500", "21"),
			row("2024-001", "Fout tarief", "50", "19"),
			row("X-999", "Wees", "10", "21"),
		},
		"Uitgaven": {
			row("Datum", "Omschrijving", "Bedrag excl.", "BTW", "ID"),
			row("2024-01-10", "Laptoptas", "82,64", "17,36", "e1"),
			row("2024-01-11", "Kapot", "veel", "0", "e2"),
		},
		"Investeringen": {
			row("Datum", "Omschrijving", "Aanschafwaarde", "Restwaarde", "Levensduur"),
			row("01-01-2024", "Laptop", "1.000", "100", "3"),
			row("2024-02-01", "Bureau", "500", "0", "0"),
		},
		"Aandeelhouders": {
			row("ID", "Naam", "Percentage"),
			row("sh1", "Anna", "60"),
			row("sh2", "Bram", "30%"),
		},
		"Relaties": {
			row("ID", "Naam", "BTW-nummer", "E-mail", "Plaats"),
			row("r1", "Acme BV", "NL001234567B01", "info@acme.nl", "Utrecht"),
			row("r2", ""),
		},
		"Instellingen": {
			row("Sleutel", "Waarde"),
			row("handmatige_correctie", "-250,50"),
		},
	}
}

func newTestReader(f fakeSheets) *Reader {
	return NewReader(f, DefaultSheetNames(), finance.DefaultVATRates())
}

func TestReadInvoices(t *testing.T) {
	invoices, err := newTestReader(fixtureSheets()).ReadInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, invoices, 3)

	first := invoices[0]
	assert.Equal(t, "2024-001", first.Number)
	assert.Equal(t, models.InvoiceTypeSales, first.Type)
	assert.Equal(t, models.InvoiceStatusSent, first.Status)
	assert.Equal(t, "2024-02-15", first.Date)
	assert.Equal(t, map[string]float64{"sh1": 60, "sh2": 40}, first.ShareholderSplit)
	assert.Equal(t, []models.InvoiceLine{
		{Description: "Advies", Amount: 1000, VATRate: 21},
		{Description: "Boeken", Amount: 200, VATRate: 9},
	}, first.Lines)

	assert.Equal(t, models.InvoiceStatusDraft, invoices[1].Status)
	assert.Len(t, invoices[1].Lines, 1)

	assert.Equal(t, models.InvoiceTypePurchase, invoices[2].Type)
	assert.Equal(t, "2024-03-01", invoices[2].Date)
	assert.Empty(t, invoices[2].Lines)
}

func TestReadInvoicesEmptySheet(t *testing.T) {
	f := fixtureSheets()
	f["Facturen"] = nil

	_, err := newTestReader(f).ReadInvoices(context.Background())
	assert.ErrorIs(t, err, ErrSheetEmpty)
}

func TestReadExpensesSkipsBadRows(t *testing.T) {
	expenses, err := newTestReader(fixtureSheets()).ReadExpenses(context.Background())
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, models.Expense{ID: "e1", Date: "2024-01-10", Description: "Laptoptas", AmountExcl: 82.64, VATAmount: 17.36}, expenses[0])
}

func TestReadInvestments(t *testing.T) {
	investments, err := newTestReader(fixtureSheets()).ReadInvestments(context.Background())
	require.NoError(t, err)
	require.Len(t, investments, 1)
	assert.Equal(t, models.Investment{
		Date: "2024-01-01", Description: "Laptop",
		PurchaseValue: 1000, ResidualValue: 100, LifespanYears: 3,
	}, investments[0])
}

func TestInvalidDateKeptVerbatim(t *testing.T) {
	f := fixtureSheets()
	f["Investeringen"] = [][]interface{}{
		row("Datum", "Omschrijving", "Aanschafwaarde", "Restwaarde", "Levensduur"),
		row("ooit", "Printer", "600", "0", "5"),
	}

	investments, err := newTestReader(f).ReadInvestments(context.Background())
	require.NoError(t, err)
	require.Len(t, investments, 1)
	assert.Equal(t, "ooit", investments[0].Date)
}

func TestSnapshot(t *testing.T) {
	l, err := newTestReader(fixtureSheets()).Snapshot(context.Background())
	require.NoError(t, err)

	assert.Len(t, l.Invoices, 3)
	assert.Len(t, l.Expenses, 1)
	assert.Len(t, l.Investments, 1)
	assert.Equal(t, []models.Shareholder{
		{ID: "sh1", Name: "Anna", DefaultPercentage: 60},
		{ID: "sh2", Name: "Bram", DefaultPercentage: 30},
	}, l.Shareholders)
	require.Len(t, l.Relations, 1)
	assert.Equal(t, "NL001234567B01", l.Relations[0].VATNumber)
	assert.Equal(t, -250.5, l.Settings.ManualCorrection)

	summary := finance.SummarizeLedger(l, finance.DefaultKIARules())
	assert.InDelta(t, 1200, summary.Revenue, 1e-9)
	assert.InDelta(t, 228, summary.VATPayable, 1e-9)
}

func TestSnapshotOptionalSheetsEmpty(t *testing.T) {
	f := fixtureSheets()
	f["Aandeelhouders"] = nil
	f["Relaties"] = nil
	f["Instellingen"] = nil

	l, err := newTestReader(f).Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, l.Shareholders)
	assert.Empty(t, l.Relations)
	assert.Zero(t, l.Settings.ManualCorrection)
}

func TestSnapshotReadError(t *testing.T) {
	f := fixtureSheets()
	delete(f, "Uitgaven")

	_, err := newTestReader(f).Snapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Uitgaven")
}

func TestSnapshotInvalidSetting(t *testing.T) {
	f := fixtureSheets()
	f["Instellingen"] = [][]interface{}{row("Sleutel", "Waarde"), row("handmatige_correctie", "n.v.t.")}

	_, err := newTestReader(f).Snapshot(context.Background())
	assert.ErrorIs(t, err, ErrInvalidSetting)
}

func TestRowError(t *testing.T) {
	err := &RowError{Sheet: "Uitgaven", Row: 3, Field: "BTW", Value: "x", Err: ErrInvalidAmount}
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, `ledger: Uitgaven row 3: field BTW ("x"): invalid amount`, err.Error())
}
