package dto

import (
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PeriodQuery is an inclusive date range given as YYYY-MM-DD query parameters.
type PeriodQuery struct {
	FromDate string `form:"fromDate" binding:"required,isodate"`
	ToDate   string `form:"toDate" binding:"required,isodate"`
	Currency string `form:"currency" binding:"omitempty,currency"`
	Format   string `form:"format" binding:"omitempty,oneof=json xlsx"`
}

// AsOfQuery names a report date; empty means today.
type AsOfQuery struct {
	AsOf     string `form:"asOf" binding:"omitempty,isodate"`
	Currency string `form:"currency" binding:"omitempty,currency"`
	Format   string `form:"format" binding:"omitempty,oneof=json xlsx"`
}

// FormatXLSX requests a spreadsheet download instead of JSON.
const FormatXLSX = "xlsx"

// JournalEntryResponse defines the data returned for one posting.
type JournalEntryResponse struct {
	ID              string                 `json:"id"`
	TransactionDate string                 `json:"transactionDate"`
	TransactionType domain.TransactionType `json:"transactionType"`
	ReferenceType   domain.ReferenceType   `json:"referenceType,omitempty"`
	ReferenceID     string                 `json:"referenceId,omitempty"`
	Description     string                 `json:"description"`
	AccountCode     string                 `json:"accountCode"`
	EntryType       domain.EntryType       `json:"entryType"`
	Amount          decimal.Decimal        `json:"amount"`
	Currency        string                 `json:"currency"`
	PropertyID      string                 `json:"propertyId,omitempty"`
	UnitID          string                 `json:"unitId,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	CreatedBy       string                 `json:"createdBy"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ListJournalEntriesResponse wraps a list of postings.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// PostingResponse is returned after posting a source record. Entries is empty
// when the record does not produce postings in its current status.
type PostingResponse struct {
	ReferenceType domain.ReferenceType   `json:"referenceType"`
	ReferenceID   string                 `json:"referenceId"`
	Entries       []JournalEntryResponse `json:"entries"`
}

// AccountBalanceResponse is the signed balance of one account.
type AccountBalanceResponse struct {
	AccountCode string        `json:"accountCode"`
	AccountName string        `json:"accountName"`
	AsOf        string        `json:"asOf"`
	Balance     MoneyResponse `json:"balance"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO
func ToJournalEntryResponse(e domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		ID:              e.ID,
		TransactionDate: e.TransactionDate.Format(domain.DateLayout),
		TransactionType: e.TransactionType,
		ReferenceType:   e.ReferenceType,
		ReferenceID:     e.ReferenceID,
		Description:     e.Description,
		AccountCode:     e.AccountCode,
		EntryType:       e.EntryType,
		Amount:          e.Amount,
		Currency:        e.Currency,
		PropertyID:      e.PropertyID,
		UnitID:          e.UnitID,
		Notes:           e.Notes,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
	}
}

// ToJournalEntryResponses converts entries, always yielding a non-nil slice.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToJournalEntryResponse(e)
	}
	return out
}
