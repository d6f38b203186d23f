package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/booking"
)

// UpdateBookingStatusCommandHandler applies an officer status update. Terminal
// bookings fail with booking.ErrInvalidTransition.
type UpdateBookingStatusCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewUpdateBookingStatusCommandHandler(uowFactory BookingUoWFactory) UpdateBookingStatusCommandHandler {
	return UpdateBookingStatusCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateBookingStatusCommandHandler) Handle(ctx context.Context, cmd UpdateBookingStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateBooking(ctx, h.uowFactory, cmd.BookingID(), func(b *booking.Booking) (bool, error) {
		if err := b.ChangeStatus(cmd.Status(), time.Now()); err != nil {
			return false, err
		}
		return true, nil
	})
}
