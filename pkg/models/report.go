package models

// FinancialSummary is a derived snapshot of the books
type FinancialSummary struct {
	Revenue          float64 `json:"revenue"`           // Omzet excl. BTW
	Expenses         float64 `json:"expenses"`          // Kosten excl. BTW
	Investments      float64 `json:"investments"`       // Sum of purchase values
	Profit           float64 `json:"profit"`            // Revenue - Expenses
	VATPayable       float64 `json:"vat_payable"`       // Output VAT on sales
	VATDeductible    float64 `json:"vat_deductible"`    // Input VAT on expenses
	VATTotal         float64 `json:"vat_total"`         // VATPayable - VATDeductible
	KIADeduction     float64 `json:"kia_deduction"`     // Kleinschaligheidsinvesteringsaftrek
	ManualCorrection float64 `json:"manual_correction"` // Passed through from settings
}

// VatReport is the VAT return for one quarter
type VatReport struct {
	Year          int     `json:"year"`
	Quarter       int     `json:"quarter"`
	TurnoverHigh  float64 `json:"turnover_high"`  // Rubriek 1a omzet
	VATHigh       float64 `json:"vat_high"`       // Rubriek 1a BTW
	TurnoverLow   float64 `json:"turnover_low"`   // Rubriek 1b omzet
	VATLow        float64 `json:"vat_low"`        // Rubriek 1b BTW
	VATDeductible float64 `json:"vat_deductible"` // Rubriek 5b voorbelasting
	TotalPayable  float64 `json:"total_payable"`  // Negative means a refund
}

// ShareholderShare is one shareholder's part of the company value
type ShareholderShare struct {
	Shareholder Shareholder `json:"shareholder"`
	Amount      float64     `json:"amount"`
}

// Valuation is the derived company value and its split
type Valuation struct {
	CompanyValue float64            `json:"company_value"`
	Shares       []ShareholderShare `json:"shares"`
}
