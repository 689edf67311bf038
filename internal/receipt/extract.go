package receipt

import (
	"fmt"
	"strings"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"boekhouder/internal/finance"
	"boekhouder/internal/ledger"
	"boekhouder/pkg/models"
)

// ExpenseFromDocument maps the entities of a processed receipt to an expense.
// A missing net amount is derived as gross minus VAT, a missing VAT amount as
// gross minus net.
func ExpenseFromDocument(doc *documentaipb.Document) (models.Expense, error) {
	var (
		date                     string
		supplier                 string
		net, vat, gross          float64
		hasNet, hasVAT, hasGross bool
	)

	for _, entity := range doc.GetEntities() {
		switch entity.GetType() {
		case "receipt_date", "invoice_date", "purchase_date":
			if date == "" {
				date = entityDate(entity)
			}
		case "supplier_name", "vendor_name":
			if supplier == "" {
				supplier = strings.TrimSpace(entity.GetMentionText())
			}
		case "net_amount", "subtotal_amount":
			net, hasNet = entityMoney(entity)
		case "total_tax_amount", "vat_amount":
			vat, hasVAT = entityMoney(entity)
		case "total_amount", "gross_amount":
			gross, hasGross = entityMoney(entity)
		}
	}

	if date == "" {
		return models.Expense{}, fmt.Errorf("%w: date", ErrMissingField)
	}

	switch {
	case hasNet && !hasVAT && hasGross:
		vat = gross - net
	case !hasNet && hasGross:
		net = gross - vat
	case !hasNet:
		return models.Expense{}, fmt.Errorf("%w: amount", ErrMissingField)
	}

	return models.Expense{
		ID:          uuid.NewString(),
		Date:        date,
		Description: supplier,
		AmountExcl:  finance.Round(net),
		VATAmount:   finance.Round(vat),
	}, nil
}

// entityDate returns the ISO date of an entity, preferring the normalized value
func entityDate(entity *documentaipb.Document_Entity) string {
	if d := entity.GetNormalizedValue().GetDateValue(); d != nil && d.GetYear() > 0 {
		return fmt.Sprintf("%04d-%02d-%02d", d.GetYear(), d.GetMonth(), d.GetDay())
	}
	iso, err := ledger.ParseDate(entity.GetMentionText())
	if err != nil {
		return ""
	}
	return iso
}

// entityMoney returns the amount of a money entity, preferring the normalized value
func entityMoney(entity *documentaipb.Document_Entity) (float64, bool) {
	if m := entity.GetNormalizedValue().GetMoneyValue(); m != nil {
		amount := decimal.New(m.GetUnits(), 0).Add(decimal.New(int64(m.GetNanos()), -9))
		return amount.InexactFloat64(), true
	}
	amount, err := ledger.ParseAmount(entity.GetMentionText())
	if err != nil || strings.TrimSpace(entity.GetMentionText()) == "" {
		return 0, false
	}
	return amount, true
}
