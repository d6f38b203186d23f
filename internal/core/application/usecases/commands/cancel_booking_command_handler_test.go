package commands_test

import (
	"testing"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/services"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelBookingCommandHandler_Handle_Owner(t *testing.T) {
	ctx := t.Context()
	b := testBooking(t, "C1", booking.StatusScheduled)
	factory, uow, repo := expectMutation(t, b)
	repo.On("Update", ctx, b).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewCancelBookingCommand(testPrincipal(t, "C1", kernel.RoleCustomer), b.ID().String())
	require.NoError(t, err)
	handler := commands.NewCancelBookingCommandHandler(factory)

	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, booking.StatusCancelled, b.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelBookingCommandHandler_Handle_OfficerCancelsAnyBooking(t *testing.T) {
	ctx := t.Context()
	b := testBooking(t, "C1", booking.StatusBooked)
	factory, uow, repo := expectMutation(t, b)
	repo.On("Update", ctx, b).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewCancelBookingCommand(testPrincipal(t, "OFF1", kernel.RoleOfficer), b.ID().String())
	require.NoError(t, err)
	handler := commands.NewCancelBookingCommandHandler(factory)

	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, booking.StatusCancelled, b.Status())
}

func TestCancelBookingCommandHandler_Handle_OtherCustomer(t *testing.T) {
	ctx := t.Context()
	b := testBooking(t, "C1", booking.StatusNew)
	factory, uow, repo := expectMutation(t, b)

	cmd, err := commands.NewCancelBookingCommand(testPrincipal(t, "C2", kernel.RoleCustomer), b.ID().String())
	require.NoError(t, err)
	handler := commands.NewCancelBookingCommandHandler(factory)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.NotErrorIs(t, err, services.ErrForbidden)
	assert.Equal(t, booking.StatusNew, b.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelBookingCommandHandler_Handle_DeliveredBooking(t *testing.T) {
	ctx := t.Context()
	b := testBooking(t, "C1", booking.StatusDelivered)
	factory, _, repo := expectMutation(t, b)

	cmd, err := commands.NewCancelBookingCommand(testPrincipal(t, "C1", kernel.RoleCustomer), b.ID().String())
	require.NoError(t, err)
	handler := commands.NewCancelBookingCommandHandler(factory)

	require.ErrorIs(t, handler.Handle(ctx, cmd), booking.ErrIllegalCancellation)
	assert.Equal(t, booking.StatusDelivered, b.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelBookingCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	ctx := t.Context()
	b := testBooking(t, "C1", booking.StatusCancelled)
	factory, uow, repo := expectMutation(t, b)
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewCancelBookingCommand(testPrincipal(t, "C1", kernel.RoleCustomer), b.ID().String())
	require.NoError(t, err)
	handler := commands.NewCancelBookingCommandHandler(factory)

	require.NoError(t, handler.Handle(ctx, cmd))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewCancelBookingCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCancelBookingCommand(kernel.Principal{}, "garbage")

	require.ErrorIs(t, err, kernel.ErrPrincipalIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
