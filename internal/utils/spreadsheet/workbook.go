// Package spreadsheet renders ledger data as XLSX workbooks for download.
package spreadsheet

import (
	"fmt"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the workbooks produced here.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TrialBalanceWorkbook lays out one row per account followed by a totals row.
func TrialBalanceWorkbook(tb domain.TrialBalance) (*excelize.File, error) {
	rows := make([][]any, 0, len(tb.Rows)+1)
	for _, r := range tb.Rows {
		rows = append(rows, []any{r.AccountCode, r.AccountName, string(r.AccountType), r.Debit.InexactFloat64(), r.Credit.InexactFloat64()})
	}
	rows = append(rows, []any{"", "Total", "", tb.TotalDebit.InexactFloat64(), tb.TotalCredit.InexactFloat64()})

	return build("Trial Balance",
		[]string{"Account Code", "Account Name", "Type", "Debit", "Credit"},
		rows)
}

// TransactionSummaryWorkbook writes revenue lines then expense lines.
func TransactionSummaryWorkbook(s domain.TransactionSummary) (*excelize.File, error) {
	rows := make([][]any, 0, len(s.Revenue)+len(s.Expenses))
	for _, l := range s.Revenue {
		rows = append(rows, []any{"Revenue", l.AccountCode, l.AccountName, l.Amount.InexactFloat64(), l.Count})
	}
	for _, l := range s.Expenses {
		rows = append(rows, []any{"Expense", l.AccountCode, l.AccountName, l.Amount.InexactFloat64(), l.Count})
	}

	return build("Transaction Summary",
		[]string{"Section", "Account Code", "Account Name", "Amount", "Count"},
		rows)
}

// JournalEntriesWorkbook writes entries in the order given.
func JournalEntriesWorkbook(entries []domain.JournalEntry) (*excelize.File, error) {
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{
			e.TransactionDate.Format(domain.DateLayout),
			string(e.TransactionType),
			string(e.ReferenceType),
			e.ReferenceID,
			e.AccountCode,
			string(e.EntryType),
			e.Amount.InexactFloat64(),
			e.Currency,
			e.Description,
		})
	}

	return build("Journal",
		[]string{"Date", "Transaction Type", "Reference Type", "Reference ID", "Account Code", "Entry Type", "Amount", "Currency", "Description"},
		rows)
}

func build(sheetName string, headers []string, rows [][]any) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header %s: %w", cell, err)
		}
	}

	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", r+2, err)
		}
	}

	return f, nil
}
