package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrSheetEmpty is returned when a required sheet has no rows at all, not even a header.
	ErrSheetEmpty = errors.New("sheet is empty")

	// ErrInvalidSetting is returned when a value on the settings sheet cannot be used.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrInvalidAmount is returned when a cell does not hold a parseable amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidVATRate is returned for an invoice line with a rate outside the allowed set.
	ErrInvalidVATRate = errors.New("invalid VAT rate")
)

// RowError describes a spreadsheet row that could not be turned into a record.
type RowError struct {
	Sheet string
	Row   int // 1-based, as shown in the spreadsheet
	Field string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("ledger: %s row %d: field %s (%q): %v", e.Sheet, e.Row, e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *RowError) Unwrap() error {
	return e.Err
}
