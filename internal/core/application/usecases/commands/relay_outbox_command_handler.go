package commands

import (
	"context"
	"fmt"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/ports"
)

// RelayOutboxCommandHandler moves pending outbox messages to the event bus.
//
// Messages are published oldest first. Publishing stops at the first failure so
// ordering is kept; the messages published before it are still marked and
// committed, the rest are retried on the next run.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.EventPublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the number of messages published.
func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	messages, err := outbox.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	published := make([]kernel.UUID, 0, len(messages))
	var publishErr error
	for _, message := range messages {
		if err = h.publisher.Publish(ctx, message); err != nil {
			publishErr = fmt.Errorf("publish %s %s: %w", message.EventType, message.ID, err)
			break
		}
		published = append(published, message.ID)
	}

	if len(published) > 0 {
		if err = outbox.MarkPublished(ctx, published, time.Now()); err != nil {
			return 0, err
		}
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
	}

	return len(published), publishErr
}
