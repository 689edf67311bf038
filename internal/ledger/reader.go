package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"boekhouder/internal/finance"
	"boekhouder/internal/logger"
	"boekhouder/pkg/models"
)

// RangeReader reads a block of cells in A1 notation. *sheets.Service implements it.
type RangeReader interface {
	ReadRange(ctx context.Context, rangeSpec string) ([][]interface{}, error)
}

// SheetNames names the tabs of the ledger spreadsheet
type SheetNames struct {
	Invoices     string
	InvoiceLines string
	Expenses     string
	Investments  string
	Shareholders string
	Relations    string
	Settings     string
}

// DefaultSheetNames returns the Dutch tab names
func DefaultSheetNames() SheetNames {
	return SheetNames{
		Invoices:     "Facturen",
		InvoiceLines: "Factuurregels",
		Expenses:     "Uitgaven",
		Investments:  "Investeringen",
		Shareholders: "Aandeelhouders",
		Relations:    "Relaties",
		Settings:     "Instellingen",
	}
}

// Reader turns the ledger spreadsheet into model records
type Reader struct {
	source RangeReader
	sheets SheetNames
	rates  finance.VATRates
	log    zerolog.Logger
}

// NewReader creates a ledger reader. Invoice lines with a VAT rate outside rates are skipped.
func NewReader(source RangeReader, sheets SheetNames, rates finance.VATRates) *Reader {
	return &Reader{
		source: source,
		sheets: sheets,
		rates:  rates,
		log:    logger.WithComponent("ledger-reader"),
	}
}

// Snapshot reads every sheet into one Ledger
func (r *Reader) Snapshot(ctx context.Context) (models.Ledger, error) {
	const op = "Snapshot"

	var l models.Ledger
	var err error

	if l.Invoices, err = r.ReadInvoices(ctx); err != nil {
		return models.Ledger{}, fmt.Errorf("%s: %w", op, err)
	}
	if l.Expenses, err = r.ReadExpenses(ctx); err != nil {
		return models.Ledger{}, fmt.Errorf("%s: %w", op, err)
	}
	if l.Investments, err = r.ReadInvestments(ctx); err != nil {
		return models.Ledger{}, fmt.Errorf("%s: %w", op, err)
	}
	if l.Shareholders, err = r.ReadShareholders(ctx); err != nil {
		return models.Ledger{}, fmt.Errorf("%s: %w", op, err)
	}
	if l.Relations, err = r.ReadRelations(ctx); err != nil {
		return models.Ledger{}, fmt.Errorf("%s: %w", op, err)
	}
	if l.Settings, err = r.ReadSettings(ctx); err != nil {
		return models.Ledger{}, fmt.Errorf("%s: %w", op, err)
	}

	r.log.Info().
		Int("invoices", len(l.Invoices)).
		Int("expenses", len(l.Expenses)).
		Int("investments", len(l.Investments)).
		Int("shareholders", len(l.Shareholders)).
		Msg("Ledger snapshot loaded")

	return l, nil
}

// readRows reads a sheet and returns its data rows without the header. When
// required is set an entirely empty sheet is an error.
func (r *Reader) readRows(ctx context.Context, sheetName, columns string, required bool) ([][]interface{}, error) {
	values, err := r.source.ReadRange(ctx, sheetName+"!"+columns)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sheet: %w", sheetName, err)
	}
	if len(values) == 0 {
		if required {
			return nil, fmt.Errorf("%s: %w", sheetName, ErrSheetEmpty)
		}
		return nil, nil
	}
	return values[1:], nil
}

// skipRow logs a row that could not be parsed
func (r *Reader) skipRow(err error) {
	var rowErr *RowError
	if errors.As(err, &rowErr) {
		r.log.Warn().
			Err(rowErr.Err).
			Str("sheet", rowErr.Sheet).
			Int("row", rowErr.Row).
			Str("field", rowErr.Field).
			Str("value", rowErr.Value).
			Msg("Skipping row")
		return
	}
	r.log.Warn().Err(err).Msg("Skipping row")
}

// ReadInvoices reads invoice headers and joins their lines by invoice number.
//
// Facturen: A=Nummer, B=Type, C=Relatie, D=Datum, E=Status, F=Verdeling
// Factuurregels: A=Factuurnummer, B=Omschrijving, C=Bedrag, D=BTW%
func (r *Reader) ReadInvoices(ctx context.Context) ([]models.Invoice, error) {
	const op = "ReadInvoices"

	rows, err := r.readRows(ctx, r.sheets.Invoices, "A:F", true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var invoices []models.Invoice
	index := make(map[string]int)
	for i, row := range rows {
		inv, err := r.parseInvoice(row, i+2)
		if err != nil {
			r.skipRow(err)
			continue
		}
		if _, dup := index[inv.Number]; dup {
			r.log.Warn().Str("number", inv.Number).Int("row", i+2).Msg("Duplicate invoice number, skipping")
			continue
		}
		index[inv.Number] = len(invoices)
		invoices = append(invoices, inv)
	}

	lineRows, err := r.readRows(ctx, r.sheets.InvoiceLines, "A:D", true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var orphans int
	for i, row := range lineRows {
		number, line, err := r.parseInvoiceLine(row, i+2)
		if err != nil {
			r.skipRow(err)
			continue
		}
		pos, ok := index[number]
		if !ok {
			orphans++
			continue
		}
		invoices[pos].Lines = append(invoices[pos].Lines, line)
	}

	if orphans > 0 {
		r.log.Warn().Int("lines", orphans).Msg("Invoice lines without a matching invoice were ignored")
	}

	r.log.Info().
		Int("total_rows", len(rows)).
		Int("parsed_invoices", len(invoices)).
		Int("line_rows", len(lineRows)).
		Msg("Invoices read successfully")

	return invoices, nil
}

func (r *Reader) parseInvoice(row []interface{}, rowNum int) (models.Invoice, error) {
	sheet := r.sheets.Invoices

	number := getString(row, 0)
	if number == "" {
		return models.Invoice{}, &RowError{Sheet: sheet, Row: rowNum, Field: "Nummer", Err: errors.New("missing invoice number")}
	}

	typ, ok := parseInvoiceType(getString(row, 1))
	if !ok {
		return models.Invoice{}, &RowError{Sheet: sheet, Row: rowNum, Field: "Type", Value: getString(row, 1), Err: errors.New("unknown invoice type")}
	}

	status, ok := parseInvoiceStatus(getString(row, 4))
	if !ok {
		return models.Invoice{}, &RowError{Sheet: sheet, Row: rowNum, Field: "Status", Value: getString(row, 4), Err: errors.New("unknown invoice status")}
	}

	split, err := ParseSplit(getString(row, 5))
	if err != nil {
		return models.Invoice{}, &RowError{Sheet: sheet, Row: rowNum, Field: "Verdeling", Value: getString(row, 5), Err: err}
	}

	return models.Invoice{
		Number:           number,
		Type:             typ,
		Relation:         getString(row, 2),
		Date:             r.normalizeDate(sheet, rowNum, getString(row, 3)),
		Status:           status,
		ShareholderSplit: split,
	}, nil
}

func (r *Reader) parseInvoiceLine(row []interface{}, rowNum int) (string, models.InvoiceLine, error) {
	sheet := r.sheets.InvoiceLines

	number := getString(row, 0)
	if number == "" {
		return "", models.InvoiceLine{}, &RowError{Sheet: sheet, Row: rowNum, Field: "Factuurnummer", Err: errors.New("missing invoice number")}
	}

	amountStr := getString(row, 2)
	amount, err := ParseAmount(amountStr)
	if err != nil {
		return "", models.InvoiceLine{}, &RowError{Sheet: sheet, Row: rowNum, Field: "Bedrag", Value: amountStr, Err: err}
	}

	rateStr := getString(row, 3)
	rate, err := ParsePercentage(rateStr)
	if err != nil || rate != float64(int(rate)) || !r.rates.Allowed(int(rate)) {
		return "", models.InvoiceLine{}, &RowError{Sheet: sheet, Row: rowNum, Field: "BTW", Value: rateStr, Err: ErrInvalidVATRate}
	}

	return number, models.InvoiceLine{
		Description: getString(row, 1),
		Amount:      amount,
		VATRate:     int(rate),
	}, nil
}

// ReadExpenses reads the expense sheet.
//
// Uitgaven: A=Datum, B=Omschrijving, C=Bedrag excl., D=BTW, E=ID
func (r *Reader) ReadExpenses(ctx context.Context) ([]models.Expense, error) {
	const op = "ReadExpenses"
	sheet := r.sheets.Expenses

	rows, err := r.readRows(ctx, sheet, "A:E", true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var expenses []models.Expense
	for i, row := range rows {
		rowNum := i + 2

		net, err := ParseAmount(getString(row, 2))
		if err != nil {
			r.skipRow(&RowError{Sheet: sheet, Row: rowNum, Field: "Bedrag excl.", Value: getString(row, 2), Err: err})
			continue
		}
		vat, err := ParseAmount(getString(row, 3))
		if err != nil {
			r.skipRow(&RowError{Sheet: sheet, Row: rowNum, Field: "BTW", Value: getString(row, 3), Err: err})
			continue
		}

		expenses = append(expenses, models.Expense{
			ID:          getString(row, 4),
			Date:        r.normalizeDate(sheet, rowNum, getString(row, 0)),
			Description: getString(row, 1),
			AmountExcl:  net,
			VATAmount:   vat,
		})
	}

	r.log.Info().Int("total_rows", len(rows)).Int("parsed_expenses", len(expenses)).Msg("Expenses read successfully")

	return expenses, nil
}

// ReadInvestments reads the investment sheet.
//
// Investeringen: A=Datum, B=Omschrijving, C=Aanschafwaarde, D=Restwaarde, E=Levensduur (jaren)
func (r *Reader) ReadInvestments(ctx context.Context) ([]models.Investment, error) {
	const op = "ReadInvestments"
	sheet := r.sheets.Investments

	rows, err := r.readRows(ctx, sheet, "A:E", true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var investments []models.Investment
	for i, row := range rows {
		rowNum := i + 2

		fields := [3]float64{}
		names := [3]string{"Aanschafwaarde", "Restwaarde", "Levensduur"}
		var rowErr error
		for j := range fields {
			value := getString(row, 2+j)
			fields[j], rowErr = ParseAmount(value)
			if rowErr != nil {
				rowErr = &RowError{Sheet: sheet, Row: rowNum, Field: names[j], Value: value, Err: rowErr}
				break
			}
		}
		if rowErr == nil && fields[2] <= 0 {
			rowErr = &RowError{Sheet: sheet, Row: rowNum, Field: names[2], Value: getString(row, 4), Err: errors.New("lifespan must be positive")}
		}
		if rowErr != nil {
			r.skipRow(rowErr)
			continue
		}

		investments = append(investments, models.Investment{
			Date:          r.normalizeDate(sheet, rowNum, getString(row, 0)),
			Description:   getString(row, 1),
			PurchaseValue: fields[0],
			ResidualValue: fields[1],
			LifespanYears: fields[2],
		})
	}

	r.log.Info().Int("total_rows", len(rows)).Int("parsed_investments", len(investments)).Msg("Investments read successfully")

	return investments, nil
}

// ReadShareholders reads the shareholder sheet. A missing header row yields no shareholders.
//
// Aandeelhouders: A=ID, B=Naam, C=Percentage
func (r *Reader) ReadShareholders(ctx context.Context) ([]models.Shareholder, error) {
	const op = "ReadShareholders"
	sheet := r.sheets.Shareholders

	rows, err := r.readRows(ctx, sheet, "A:C", false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var shareholders []models.Shareholder
	for i, row := range rows {
		pct, err := ParsePercentage(getString(row, 2))
		if err != nil {
			r.skipRow(&RowError{Sheet: sheet, Row: i + 2, Field: "Percentage", Value: getString(row, 2), Err: err})
			continue
		}
		shareholders = append(shareholders, models.Shareholder{
			ID:                getString(row, 0),
			Name:              getString(row, 1),
			DefaultPercentage: pct,
		})
	}

	return shareholders, nil
}

// ReadRelations reads customers and suppliers.
//
// Relaties: A=ID, B=Naam, C=BTW-nummer, D=E-mail, E=Plaats
func (r *Reader) ReadRelations(ctx context.Context) ([]models.Relation, error) {
	const op = "ReadRelations"

	rows, err := r.readRows(ctx, r.sheets.Relations, "A:E", false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	relations := make([]models.Relation, 0, len(rows))
	for _, row := range rows {
		if getString(row, 1) == "" {
			continue
		}
		relations = append(relations, models.Relation{
			ID:        getString(row, 0),
			Name:      getString(row, 1),
			VATNumber: getString(row, 2),
			Email:     getString(row, 3),
			City:      getString(row, 4),
		})
	}

	return relations, nil
}

// ReadSettings reads key/value pairs from the settings sheet.
//
// Instellingen: A=Sleutel, B=Waarde
func (r *Reader) ReadSettings(ctx context.Context) (models.Settings, error) {
	const op = "ReadSettings"

	rows, err := r.readRows(ctx, r.sheets.Settings, "A:B", false)
	if err != nil {
		return models.Settings{}, fmt.Errorf("%s: %w", op, err)
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		if key := getString(row, 0); key != "" {
			values[key] = getString(row, 1)
		}
	}

	settings, err := ParseSettings(values)
	if err != nil {
		return models.Settings{}, fmt.Errorf("%s: %w", op, err)
	}
	return settings, nil
}

// normalizeDate returns the ISO form of a date cell. Unrecognized dates are kept
// verbatim so downstream calculations see them as invalid.
func (r *Reader) normalizeDate(sheet string, rowNum int, value string) string {
	iso, err := ParseDate(value)
	if err != nil {
		r.log.Warn().
			Str("sheet", sheet).
			Int("row", rowNum).
			Str("date_str", value).
			Msg("Invalid date, keeping raw value")
		return value
	}
	return iso
}

func parseInvoiceType(s string) (models.InvoiceType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SALES", "VERKOOP":
		return models.InvoiceTypeSales, true
	case "PURCHASE", "INKOOP":
		return models.InvoiceTypePurchase, true
	}
	return "", false
}

var dutchStatus = map[string]models.InvoiceStatus{
	"CONCEPT":       models.InvoiceStatusDraft,
	"VERZONDEN":     models.InvoiceStatusSent,
	"DEELS BETAALD": models.InvoiceStatusPartial,
	"BETAALD":       models.InvoiceStatusPaid,
	"VERLOPEN":      models.InvoiceStatusOverdue,
}

func parseInvoiceStatus(s string) (models.InvoiceStatus, bool) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if status := models.InvoiceStatus(upper); status.IsValid() {
		return status, true
	}
	status, ok := dutchStatus[upper]
	return status, ok
}
