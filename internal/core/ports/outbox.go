package ports

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized domain event waiting to be published.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID string
	EventType   string
	Payload     []byte
	OccurredAt  time.Time
	PublishedAt *time.Time
}

// OutboxRepository stores events in the same transaction as the aggregate
// change that produced them.
type OutboxRepository interface {
	Add(ctx context.Context, messages ...OutboxMessage) error

	// GetUnpublished returns up to limit unpublished messages, oldest first,
	// skipping rows locked by a concurrent relay.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers an outbox message to the event bus.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
