package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/property_ledger/internal/core/ports/events"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes events as JSON to a single Kafka topic.
type Publisher struct {
	writer MessageWriter
}

var _ events.Publisher = (*Publisher)(nil)

// NewPublisher creates a publisher for topic on brokers. An empty topic uses
// events.TopicJournalEntriesPosted.
func NewPublisher(brokers []string, topic string) *Publisher {
	if topic == "" {
		topic = events.TopicJournalEntriesPosted
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

// NewPublisherWithWriter wraps an existing writer.
func NewPublisherWithWriter(w MessageWriter) *Publisher {
	return &Publisher{writer: w}
}

// Publish marshals event and writes it keyed by key. Messages with the same
// key land on the same partition.
func (p *Publisher) Publish(ctx context.Context, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "event-type", Value: []byte(fmt.Sprintf("%T", event))},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event for key %s: %w", key, err)
	}
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
