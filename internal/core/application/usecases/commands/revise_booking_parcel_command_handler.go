package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/booking"
)

// ReviseBookingParcelCommandHandler replaces the parcel and thereby reprices the booking.
type ReviseBookingParcelCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewReviseBookingParcelCommandHandler(uowFactory BookingUoWFactory) ReviseBookingParcelCommandHandler {
	return ReviseBookingParcelCommandHandler{uowFactory: uowFactory}
}

func (h *ReviseBookingParcelCommandHandler) Handle(ctx context.Context, cmd ReviseBookingParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateBooking(ctx, h.uowFactory, cmd.BookingID(), func(b *booking.Booking) (bool, error) {
		if err := b.ReviseParcel(cmd.Parcel(), time.Now()); err != nil {
			return false, err
		}
		return true, nil
	})
}
