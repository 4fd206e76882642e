package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emirfredy/ynab-syncher-sub000/internal/logging"
)

func newImporter() *Importer {
	return New(&logging.MockLogger{})
}

func TestImportValidRows(t *testing.T) {
	rows := []RawTransactionRow{
		{Date: "2024-03-10", Description: "MIGROS ZURICH", Amount: "-42.50", Merchant: "Migros"},
		{Date: "2024-03-11", Description: "Salary March", Amount: "5000.00"},
	}

	result, err := newImporter().Import("acc-1", rows)
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, 2, result.TotalProcessed)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Errored)
	assert.Equal(t, 0, result.DuplicatesSkipped)
	require.Len(t, result.Transactions, 2)

	first := result.Transactions[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "acc-1", first.AccountID)
	assert.Equal(t, "MIGROS ZURICH", first.Description)
	assert.Equal(t, "Migros", first.Merchant)
	assert.Equal(t, "-42.50", first.Amount.StringFixed(2))
	assert.True(t, first.IsDebit())
	assert.True(t, first.Category.IsUnknown())

	second := result.Transactions[1]
	assert.Equal(t, "Salary March", second.Merchant, "merchant falls back to description")
	assert.True(t, second.IsCredit())

	assert.NotEqual(t, first.ID, second.ID)
}

func TestImportBoundaryViolations(t *testing.T) {
	importer := newImporter()
	valid := RawTransactionRow{Date: "2024-03-10", Description: "MIGROS", Amount: "-10.00"}

	tests := []struct {
		name      string
		accountID string
		rows      []RawTransactionRow
		errSubstr string
	}{
		{
			name:      "BlankAccountID",
			accountID: "  ",
			rows:      []RawTransactionRow{valid},
			errSubstr: "account id",
		},
		{
			name:      "EmptyBatch",
			accountID: "acc-1",
			rows:      nil,
			errSubstr: "no transaction rows",
		},
		{
			name:      "BlankDescriptionFailsWholeBatch",
			accountID: "acc-1",
			rows: []RawTransactionRow{
				valid,
				{Date: "2024-03-11", Description: "   ", Amount: "-5.00"},
			},
			errSubstr: "line 2: description must not be blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := importer.Import(tt.accountID, tt.rows)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestImportMalformedRowsReported(t *testing.T) {
	rows := []RawTransactionRow{
		{Date: "2023-02-29", Description: "Not a leap year", Amount: "-10.00"},
		{Date: "2024-03-10", Description: "Bad amount", Amount: "twelve"},
		{Date: "2024-03-11", Description: "Fine", Amount: "-1.00"},
	}

	result, err := newImporter().Import("acc-1", rows)
	require.NoError(t, err)

	assert.Equal(t, StatusPartialSuccess, result.Status)
	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Errored)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "line 1: invalid date '2023-02-29'", result.Errors[0])
	assert.Equal(t, "line 2: invalid amount 'twelve'", result.Errors[1])
}

func TestImportAllRowsFailed(t *testing.T) {
	rows := []RawTransactionRow{
		{Date: "not-a-date", Description: "A", Amount: "-1.00"},
		{Date: "2024-13-40", Description: "B", Amount: "-2.00"},
	}

	result, err := newImporter().Import("acc-1", rows)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, 2, result.Errored)
	assert.Empty(t, result.Transactions)
}

func TestImportSkipsExactDuplicates(t *testing.T) {
	row := RawTransactionRow{Date: "2024-03-10", Description: "MIGROS ZURICH", Amount: "-42.50"}

	result, err := newImporter().Import("acc-1", []RawTransactionRow{row, row})
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, 2, result.TotalProcessed)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.DuplicatesSkipped)
	assert.Len(t, result.Transactions, 1)
}

func TestImportDuplicateDetectionIsLiteral(t *testing.T) {
	tests := []struct {
		name string
		a    RawTransactionRow
		b    RawTransactionRow
	}{
		{
			name: "CaseDiffers",
			a:    RawTransactionRow{Date: "2024-03-10", Description: "MIGROS", Amount: "-42.50"},
			b:    RawTransactionRow{Date: "2024-03-10", Description: "migros", Amount: "-42.50"},
		},
		{
			name: "WhitespaceDiffers",
			a:    RawTransactionRow{Date: "2024-03-10", Description: "MIGROS", Amount: "-42.50"},
			b:    RawTransactionRow{Date: "2024-03-10", Description: "MIGROS ", Amount: "-42.50"},
		},
		{
			name: "AmountSpelledDifferently",
			a:    RawTransactionRow{Date: "2024-03-10", Description: "MIGROS", Amount: "-42.50"},
			b:    RawTransactionRow{Date: "2024-03-10", Description: "MIGROS", Amount: "-42.5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newImporter().Import("acc-1", []RawTransactionRow{tt.a, tt.b})
			require.NoError(t, err)

			assert.Equal(t, 2, result.Imported, "literal differences make distinct transactions")
			assert.Equal(t, 0, result.DuplicatesSkipped)
		})
	}
}

func TestImportLongMerchantTruncated(t *testing.T) {
	rows := []RawTransactionRow{
		{Date: "2024-03-10", Description: "desc", Amount: "-1.00", Merchant: strings.Repeat("x", 60)},
		{Date: "2024-03-11", Description: "desc", Amount: "-2.00", Merchant: strings.Repeat("é", 60)},
	}

	result, err := newImporter().Import("acc-1", rows)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	assert.Len(t, result.Transactions[0].Merchant, 50)

	// Truncation counts runes, not bytes: a 60-rune multi-byte merchant
	// keeps 50 whole runes instead of being cut mid-character.
	multibyte := result.Transactions[1].Merchant
	assert.Equal(t, 50, len([]rune(multibyte)))
	assert.Equal(t, strings.Repeat("é", 50), multibyte)
}
