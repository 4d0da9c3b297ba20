package spreadsheet_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/utils/spreadsheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// roundTrip serialises f and reads it back, as a client would.
func roundTrip(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	out, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	return out
}

func TestTrialBalanceWorkbook(t *testing.T) {
	tb := domain.TrialBalance{
		AsOfDate: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Rows: []domain.TrialBalanceRow{
			{AccountCode: "1000", AccountName: "Cash - Operating", AccountType: domain.Asset, Debit: decimal.RequireFromString("1250.5"), Credit: decimal.Zero},
			{AccountCode: "4000", AccountName: "Rental Income", AccountType: domain.Revenue, Debit: decimal.Zero, Credit: decimal.RequireFromString("1250.5")},
		},
		TotalDebit:  decimal.RequireFromString("1250.5"),
		TotalCredit: decimal.RequireFromString("1250.5"),
	}

	f, err := spreadsheet.TrialBalanceWorkbook(tb)
	require.NoError(t, err)

	rows, err := roundTrip(t, f).GetRows("Trial Balance")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Account Code", "Account Name", "Type", "Debit", "Credit"}, rows[0])
	assert.Equal(t, "1000", rows[1][0])
	assert.Equal(t, "asset", rows[1][2])
	assert.Equal(t, "1250.5", rows[1][3])
	assert.Equal(t, "Total", rows[3][1])
	assert.Equal(t, rows[3][3], rows[3][4])
}

func TestTransactionSummaryWorkbook_SectionsInOrder(t *testing.T) {
	s := domain.TransactionSummary{
		Revenue:  []domain.SummaryLine{{AccountCode: "4000", AccountName: "Rental Income", Amount: decimal.NewFromInt(2000), Count: 2}},
		Expenses: []domain.SummaryLine{{AccountCode: "6100", AccountName: "Repairs & Maintenance", Amount: decimal.NewFromInt(300), Count: 1}},
	}

	f, err := spreadsheet.TransactionSummaryWorkbook(s)
	require.NoError(t, err)

	rows, err := roundTrip(t, f).GetRows("Transaction Summary")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Revenue", rows[1][0])
	assert.Equal(t, "Expense", rows[2][0])
	assert.Equal(t, "Repairs & Maintenance", rows[2][2])
}

func TestJournalEntriesWorkbook_Empty(t *testing.T) {
	f, err := spreadsheet.JournalEntriesWorkbook(nil)
	require.NoError(t, err)

	rows, err := roundTrip(t, f).GetRows("Journal")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Date", rows[0][0])
}
