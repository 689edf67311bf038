package models

// Expense is a booked cost. VATAmount is an absolute amount, not a rate.
type Expense struct {
	ID          string
	Date        string  // ISO YYYY-MM-DD
	Description string  // Omschrijving / leverancier
	AmountExcl  float64 // Net amount
	VATAmount   float64 // Deductible input VAT
}

// Investment is a depreciable asset
type Investment struct {
	Date          string // Acquisition date, ISO YYYY-MM-DD
	Description   string
	PurchaseValue float64 // Aanschafwaarde
	ResidualValue float64 // Restwaarde
	LifespanYears float64 // Levensduur, > 0
}

// Shareholder owns a share of the company
type Shareholder struct {
	ID                string
	Name              string
	DefaultPercentage float64 // 0-100, not required to sum to 100 across shareholders
}

// Relation is a customer or supplier
type Relation struct {
	ID        string
	Name      string
	VATNumber string // BTW-nummer
	Email     string
	City      string
}

// Settings holds user-editable bookkeeping settings
type Settings struct {
	// ManualCorrection is added to the company value. Defaults to 0.
	ManualCorrection float64
}

// Ledger is an in-memory snapshot of all bookkeeping records
type Ledger struct {
	Invoices     []Invoice
	Expenses     []Expense
	Investments  []Investment
	Shareholders []Shareholder
	Relations    []Relation
	Settings     Settings
}
