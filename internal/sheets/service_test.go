package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boekhouder/pkg/models"
)

func TestExtractSpreadsheetID(t *testing.T) {
	id, err := extractSpreadsheetID("https://docs.google.com/spreadsheets/d/1AbC-d_E2/edit#gid=0")
	require.NoError(t, err)
	assert.Equal(t, "1AbC-d_E2", id)

	_, err = extractSpreadsheetID("https://example.com/not-a-sheet")
	assert.Error(t, err)
}

func TestColumnLetter(t *testing.T) {
	assert.Equal(t, "A", columnLetter(1))
	assert.Equal(t, "E", columnLetter(5))
	assert.Equal(t, "I", columnLetter(9))
	assert.Equal(t, "Z", columnLetter(26))
	assert.Equal(t, "AA", columnLetter(27))
}

func TestVatReportRow(t *testing.T) {
	report := models.VatReport{
		Year: 2024, Quarter: 1,
		TurnoverHigh: 100, VATHigh: 21,
		TurnoverLow: 200, VATLow: 18,
		VATDeductible: 10.004, TotalPayable: 28.996,
	}
	at := time.Date(2024, 4, 2, 9, 30, 0, 0, time.UTC)

	row := vatReportRow(report, at)

	require.Len(t, row, len(VatReturnHeaders))
	assert.Equal(t, 2024, row[0])
	assert.Equal(t, 1, row[1])
	assert.Equal(t, 10.0, row[6])
	assert.Equal(t, 29.0, row[7])
	assert.Equal(t, "2024-04-02 09:30:00", row[8])
}

func TestExpenseRow(t *testing.T) {
	row := expenseRow(models.Expense{
		ID: "abc", Date: "2024-03-01", Description: "Bol.com",
		AmountExcl: 82.644, VATAmount: 17.355,
	})

	require.Len(t, row, len(ExpenseHeaders))
	assert.Equal(t, []interface{}{"2024-03-01", "Bol.com", 82.64, 17.36, "abc"}, row)
}
