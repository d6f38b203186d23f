package commands

import (
	"context"
	"errors"
	"time"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/customer"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/services"
	"parcel/internal/pkg/errs"
)

// CreateBookingCommandHandler resolves the owner, prices and persists a new
// booking in status NEW. Nothing is written when the owner cannot be resolved.
type CreateBookingCommandHandler struct {
	uowFactory UoWFactory
	resolver   services.ScopeResolver
}

func NewCreateBookingCommandHandler(uowFactory UoWFactory) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewScopeResolver(),
	}
}

// Handle returns the public identifier of the created booking.
func (h *CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (booking.ID, error) {
	if err := cmd.Validate(); err != nil {
		return booking.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return booking.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var target *customer.Customer
	if cmd.CustomerID() != "" {
		found, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return booking.ID{}, err
		}
		target = found
	}

	ownerID, err := h.resolver.CreationOwner(cmd.Principal(), cmd.AsOfficer(), cmd.CustomerID(), target)
	if err != nil {
		return booking.ID{}, err
	}

	b, err := booking.NewBooking(
		kernel.NewUUID(),
		booking.NewID(),
		ownerID,
		cmd.Receiver(),
		cmd.Parcel(),
		cmd.Schedule(),
		cmd.AsOfficer(),
		time.Now(),
	)
	if err != nil {
		return booking.ID{}, err
	}

	if err = uow.BookingRepository().Add(ctx, b); err != nil {
		return booking.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return booking.ID{}, err
	}

	return b.ID(), nil
}
