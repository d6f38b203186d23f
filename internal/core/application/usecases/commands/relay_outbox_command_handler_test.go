package commands_test

import (
	"errors"
	"testing"
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outboxMessages(n int) []ports.OutboxMessage {
	messages := make([]ports.OutboxMessage, 0, n)
	for i := range n {
		messages = append(messages, ports.OutboxMessage{
			ID:          kernel.NewUUID(),
			AggregateID: booking.NewID().String(),
			EventType:   string(booking.EventCreated),
			Payload:     []byte(`{}`),
			OccurredAt:  time.Now().Add(time.Duration(i) * time.Second),
		})
	}
	return messages
}

func expectRelay(t *testing.T, messages []ports.OutboxMessage) (*MockOutboxUoWFactory, *MockUoW, *MockOutboxRepository) {
	t.Helper()
	ctx := t.Context()
	outbox := new(MockOutboxRepository)
	uow := new(MockUoW)
	factory := new(MockOutboxUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(outbox).Once()
	outbox.On("GetUnpublished", ctx, 10).Return(messages, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	return factory, uow, outbox
}

func TestNewRelayOutboxCommand(t *testing.T) {
	_, err := commands.NewRelayOutboxCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewRelayOutboxCommand(1001)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	cmd, err := commands.NewRelayOutboxCommand(1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, cmd.BatchSize())
}

func TestRelayOutboxCommandHandler_Handle_PublishesInOrder(t *testing.T) {
	ctx := t.Context()
	messages := outboxMessages(3)
	factory, uow, outbox := expectRelay(t, messages)
	publisher := new(MockEventPublisher)

	var order []kernel.UUID
	publisher.On("Publish", ctx, mock.Anything).Run(func(args mock.Arguments) {
		order = append(order, args.Get(1).(ports.OutboxMessage).ID)
	}).Return(nil).Times(3)
	ids := []kernel.UUID{messages[0].ID, messages[1].ID, messages[2].ID}
	outbox.On("MarkPublished", ctx, ids, mock.AnythingOfType("time.Time")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)
	handler := commands.NewRelayOutboxCommandHandler(factory, publisher)

	count, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, ids, order)
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRelayOutboxCommandHandler_Handle_StopsAtFirstFailure(t *testing.T) {
	ctx := t.Context()
	messages := outboxMessages(3)
	factory, uow, outbox := expectRelay(t, messages)
	publisher := new(MockEventPublisher)
	brokerErr := errors.New("channel closed")

	publisher.On("Publish", ctx, messages[0]).Return(nil).Once()
	publisher.On("Publish", ctx, messages[1]).Return(brokerErr).Once()
	outbox.On("MarkPublished", ctx, []kernel.UUID{messages[0].ID}, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)
	handler := commands.NewRelayOutboxCommandHandler(factory, publisher)

	count, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, brokerErr)
	assert.Equal(t, 1, count)
	publisher.AssertNotCalled(t, "Publish", ctx, messages[2])
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRelayOutboxCommandHandler_Handle_NothingPending(t *testing.T) {
	ctx := t.Context()
	factory, uow, _ := expectRelay(t, nil)
	publisher := new(MockEventPublisher)

	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)
	handler := commands.NewRelayOutboxCommandHandler(factory, publisher)

	count, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, count)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestRelayOutboxCommandHandler_Handle_NotConstructed(t *testing.T) {
	handler := commands.NewRelayOutboxCommandHandler(new(MockOutboxUoWFactory), new(MockEventPublisher))

	_, err := handler.Handle(t.Context(), commands.RelayOutboxCommand{})

	require.ErrorIs(t, err, commands.ErrRelayOutboxCommandIsNotConstructed)
}
