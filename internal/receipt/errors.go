package receipt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPDF is returned when the data is not a PDF document.
	ErrInvalidPDF = errors.New("invalid or corrupted PDF document")

	// ErrDocumentTooLarge is returned when the PDF exceeds the Document AI size limit.
	ErrDocumentTooLarge = errors.New("document exceeds maximum size limit")

	// ErrProcessingFailed is returned when Document AI cannot process the document.
	ErrProcessingFailed = errors.New("document AI processing failed")

	// ErrMissingField is returned when a receipt lacks a date or any usable amount.
	ErrMissingField = errors.New("missing required receipt field")
)

// ScanError wraps a failure to turn one receipt into an expense.
type ScanError struct {
	Op   string
	File string
	Err  error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("receipt: %s %s: %v", e.Op, e.File, e.Err)
	}
	return fmt.Sprintf("receipt: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScanError) Unwrap() error {
	return e.Err
}
