package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags a journal entry with the business event that produced it.
type TransactionType string

const (
	PaymentTransaction    TransactionType = "payment"
	ExpenseTransaction    TransactionType = "expense"
	InvoiceTransaction    TransactionType = "invoice"
	DepositTransaction    TransactionType = "deposit"
	AdjustmentTransaction TransactionType = "adjustment"
)

// EntryType indicates whether a posting is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "debit"
	Credit EntryType = "credit"
)

// ReferenceType names the kind of source record a journal entry points back to.
type ReferenceType string

const (
	PaymentReference ReferenceType = "payment"
	ExpenseReference ReferenceType = "expense"
	InvoiceReference ReferenceType = "invoice"
	LeaseReference   ReferenceType = "lease"
)

// JournalEntry is a single posting: one side of a balanced transaction.
// A transaction is the group of entries sharing ReferenceID, ReferenceType and TransactionDate.
type JournalEntry struct {
	ID              string          `json:"id"`
	TenantID        string          `json:"tenantId"`
	TransactionDate time.Time       `json:"transactionDate"`
	TransactionType TransactionType `json:"transactionType"`
	ReferenceID     string          `json:"referenceId,omitempty"`
	ReferenceType   ReferenceType   `json:"referenceType,omitempty"`
	Description     string          `json:"description"`
	AccountCode     string          `json:"accountCode"`
	EntryType       EntryType       `json:"entryType"`
	Amount          decimal.Decimal `json:"amount"` // never negative
	Currency        string          `json:"currency"`
	PropertyID      string          `json:"propertyId,omitempty"`
	UnitID          string          `json:"unitId,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedBy       string          `json:"createdBy"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// IsDebit reports whether the entry debits its account.
func (e JournalEntry) IsDebit() bool {
	return e.EntryType == Debit
}
