package models

// InvoiceType distinguishes outgoing from incoming invoices
type InvoiceType string

const (
	InvoiceTypeSales    InvoiceType = "SALES"    // Verkoopfactuur
	InvoiceTypePurchase InvoiceType = "PURCHASE" // Inkoopfactuur
)

// InvoiceStatus is the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "DRAFT"
	InvoiceStatusSent    InvoiceStatus = "SENT"
	InvoiceStatusPartial InvoiceStatus = "PARTIAL"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusOverdue InvoiceStatus = "OVERDUE"
)

// IsValid reports whether the status is one of the known states
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPartial, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// IsValid reports whether the type is SALES or PURCHASE
func (t InvoiceType) IsValid() bool {
	return t == InvoiceTypeSales || t == InvoiceTypePurchase
}

// InvoiceLine is a single line on an invoice
type InvoiceLine struct {
	Description string  // Omschrijving
	Amount      float64 // Net amount, excludes VAT
	VATRate     int     // Percentage: 0, 9 or 21
}

type Invoice struct {
	// Identifiers
	Number   string      // Factuurnummer
	Type     InvoiceType // SALES or PURCHASE
	Relation string      // Customer or supplier name

	// Date is the invoice date as ISO YYYY-MM-DD
	Date   string
	Status InvoiceStatus

	Lines []InvoiceLine

	// ShareholderSplit maps shareholder id to a percentage. Recorded only;
	// no calculation consumes it.
	ShareholderSplit map[string]float64
}

// IsSales returns true for outgoing invoices
func (i *Invoice) IsSales() bool {
	return i.Type == InvoiceTypeSales
}
