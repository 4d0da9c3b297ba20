// Package eventlog publishes events to the structured log. It stands in for a
// broker in local runs and deployments without Kafka.
package eventlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/property_ledger/internal/core/ports/events"
	"github.com/SscSPs/property_ledger/internal/middleware"
)

// LogPublisher writes each event as one info record.
type LogPublisher struct {
	topic string
}

var _ events.Publisher = (*LogPublisher)(nil)

// NewLogPublisher creates a publisher that labels records with topic.
func NewLogPublisher(topic string) *LogPublisher {
	if topic == "" {
		topic = events.TopicJournalEntriesPosted
	}
	return &LogPublisher{topic: topic}
}

// Publish logs the event with the request-scoped logger. It never fails.
func (p *LogPublisher) Publish(ctx context.Context, key string, event any) error {
	attrs := []any{
		slog.String("topic", p.topic),
		slog.String("key", key),
		slog.String("event_type", fmt.Sprintf("%T", event)),
	}
	if posted, ok := event.(events.JournalEntriesPosted); ok {
		attrs = append(attrs,
			slog.String("tenant_id", posted.TenantID),
			slog.String("reference_type", string(posted.ReferenceType)),
			slog.Int("entry_count", len(posted.Entries)))
	}
	middleware.GetLoggerFromCtx(ctx).Info("Event published", attrs...)
	return nil
}
