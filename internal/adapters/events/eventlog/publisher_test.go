package eventlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/SscSPs/property_ledger/internal/adapters/events/eventlog"
	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/SscSPs/property_ledger/internal/core/ports/events"
	"github.com/SscSPs/property_ledger/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := middleware.WithLogger(context.Background(), logger)

	p := eventlog.NewLogPublisher("")
	err := p.Publish(ctx, "exp-1", events.JournalEntriesPosted{
		TenantID:      "tenant-1",
		ReferenceType: domain.ExpenseReference,
		ReferenceID:   "exp-1",
		Entries:       make([]domain.JournalEntry, 2),
	})
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Event published", record["msg"])
	assert.Equal(t, events.TopicJournalEntriesPosted, record["topic"])
	assert.Equal(t, "exp-1", record["key"])
	assert.Equal(t, "tenant-1", record["tenant_id"])
	assert.Equal(t, "expense", record["reference_type"])
	assert.EqualValues(t, 2, record["entry_count"])
}

func TestLogPublisher_OtherEvents(t *testing.T) {
	var buf bytes.Buffer
	ctx := middleware.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, eventlog.NewLogPublisher("audit").Publish(ctx, "k", "plain"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "audit", record["topic"])
	assert.Equal(t, "string", record["event_type"])
	assert.NotContains(t, record, "tenant_id")
}
