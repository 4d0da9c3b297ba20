package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a journal entry row is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// JournalEntry is the journal_entries row. Optional columns are nullable and
// scanned into pointers.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`         // Primary Key (e.g., UUID)
	TenantID        string          `json:"tenantID"`        // Not Null
	TransactionDate time.Time       `json:"transactionDate"` // DATE column
	TransactionType string          `json:"transactionType"` // payment, expense, invoice, deposit, adjustment
	ReferenceID     *string         `json:"referenceID"`     // Nullable
	ReferenceType   *string         `json:"referenceType"`   // Nullable
	Description     string          `json:"description"`
	AccountCode     string          `json:"accountCode"` // Not Null
	EntryType       EntryType       `json:"entryType"`   // DEBIT or CREDIT (Not Null)
	Amount          decimal.Decimal `json:"amount"`      // NUMERIC(19,4), never negative
	CurrencyCode    string          `json:"currencyCode"`
	PropertyID      *string         `json:"propertyID"` // Nullable
	UnitID          *string         `json:"unitID"`     // Nullable
	Notes           *string         `json:"notes"`      // Nullable
	CreatedBy       string          `json:"createdBy"`
	CreatedAt       time.Time       `json:"createdAt"`
}
