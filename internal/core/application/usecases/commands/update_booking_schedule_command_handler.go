package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/booking"
)

// UpdateBookingScheduleCommandHandler replaces the schedule of a non-terminal booking.
type UpdateBookingScheduleCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewUpdateBookingScheduleCommandHandler(uowFactory BookingUoWFactory) UpdateBookingScheduleCommandHandler {
	return UpdateBookingScheduleCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateBookingScheduleCommandHandler) Handle(ctx context.Context, cmd UpdateBookingScheduleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateBooking(ctx, h.uowFactory, cmd.BookingID(), func(b *booking.Booking) (bool, error) {
		if err := b.Reschedule(cmd.Schedule(), time.Now()); err != nil {
			return false, err
		}
		return true, nil
	})
}
