package commands_test

import (
	"testing"
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/booking"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRecordPaymentCommand(t *testing.T) {
	_, err := commands.NewRecordPaymentCommand(booking.NewID().String(), time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewRecordPaymentCommand("", time.Now())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRecordPaymentCommandHandler_Handle(t *testing.T) {
	paidAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("first payment is stored", func(t *testing.T) {
		ctx := t.Context()
		b := testBooking(t, "C1", booking.StatusDelivered)
		factory, uow, repo := expectMutation(t, b)
		repo.On("Update", ctx, b).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewRecordPaymentCommand(b.ID().String(), paidAt)
		require.NoError(t, err)
		handler := commands.NewRecordPaymentCommandHandler(factory)

		require.NoError(t, handler.Handle(ctx, cmd))
		assert.True(t, b.PaidAt().Equal(paidAt))
		repo.AssertExpectations(t)
	})

	t.Run("second payment commits without writing", func(t *testing.T) {
		ctx := t.Context()
		b := testBooking(t, "C1", booking.StatusBooked)
		_, err := b.RecordPayment(paidAt, paidAt)
		require.NoError(t, err)
		factory, uow, repo := expectMutation(t, b)
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewRecordPaymentCommand(b.ID().String(), paidAt.Add(time.Hour))
		require.NoError(t, err)
		handler := commands.NewRecordPaymentCommandHandler(factory)

		require.NoError(t, handler.Handle(ctx, cmd))
		assert.True(t, b.PaidAt().Equal(paidAt))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("cancelled booking", func(t *testing.T) {
		ctx := t.Context()
		b := testBooking(t, "C1", booking.StatusCancelled)
		factory, _, _ := expectMutation(t, b)

		cmd, err := commands.NewRecordPaymentCommand(b.ID().String(), paidAt)
		require.NoError(t, err)
		handler := commands.NewRecordPaymentCommandHandler(factory)

		require.ErrorIs(t, handler.Handle(ctx, cmd), booking.ErrInvalidTransition)
	})
}
