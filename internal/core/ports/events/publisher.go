package events

import (
	"context"
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// TopicJournalEntriesPosted is the default topic for posting notifications.
const TopicJournalEntriesPosted = "journal.entries.posted"

// Publisher delivers domain events to interested consumers. key groups
// related events (the reference ID) so consumers see them in order.
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// JournalEntriesPosted is emitted after entries for a source record are saved.
type JournalEntriesPosted struct {
	TenantID      string                `json:"tenant_id"`
	ReferenceType domain.ReferenceType  `json:"reference_type"`
	ReferenceID   string                `json:"reference_id"`
	Entries       []domain.JournalEntry `json:"entries"`
	PostedBy      string                `json:"posted_by"`
	OccurredAt    time.Time             `json:"occurred_at"`
}
