package mapping

import (
	"strings"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:         d.ID,
		TenantID:        d.TenantID,
		TransactionDate: domain.DateOnly(d.TransactionDate),
		TransactionType: string(d.TransactionType),
		ReferenceID:     toNullable(d.ReferenceID),
		ReferenceType:   toNullable(string(d.ReferenceType)),
		Description:     d.Description,
		AccountCode:     d.AccountCode,
		EntryType:       models.EntryType(strings.ToUpper(string(d.EntryType))),
		Amount:          d.Amount,
		CurrencyCode:    d.Currency,
		PropertyID:      toNullable(d.PropertyID),
		UnitID:          toNullable(d.UnitID),
		Notes:           toNullable(d.Notes),
		CreatedBy:       d.CreatedBy,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		ID:              m.EntryID,
		TenantID:        m.TenantID,
		TransactionDate: m.TransactionDate,
		TransactionType: domain.TransactionType(m.TransactionType),
		ReferenceID:     fromNullable(m.ReferenceID),
		ReferenceType:   domain.ReferenceType(fromNullable(m.ReferenceType)),
		Description:     m.Description,
		AccountCode:     m.AccountCode,
		EntryType:       domain.EntryType(strings.ToLower(string(m.EntryType))),
		Amount:          m.Amount,
		Currency:        m.CurrencyCode,
		PropertyID:      fromNullable(m.PropertyID),
		UnitID:          fromNullable(m.UnitID),
		Notes:           fromNullable(m.Notes),
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainJournalEntrySlice converts a slice of model JournalEntry to a slice of domain JournalEntry
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}
