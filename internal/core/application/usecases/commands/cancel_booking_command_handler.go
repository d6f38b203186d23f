package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/services"
)

// CancelBookingCommandHandler checks ownership first, then the cancellation
// rule. A customer cancelling someone else's booking gets a not-found error,
// the same as for a booking that does not exist.
type CancelBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	resolver   services.ScopeResolver
}

func NewCancelBookingCommandHandler(uowFactory BookingUoWFactory) CancelBookingCommandHandler {
	return CancelBookingCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewScopeResolver(),
	}
}

func (h *CancelBookingCommandHandler) Handle(ctx context.Context, cmd CancelBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateBooking(ctx, h.uowFactory, cmd.BookingID(), func(b *booking.Booking) (bool, error) {
		if err := h.resolver.CanCancel(cmd.Principal(), b); err != nil {
			return false, err
		}
		wasCancelled := b.Status() == booking.StatusCancelled
		if err := b.Cancel(time.Now()); err != nil {
			return false, err
		}
		return !wasCancelled, nil
	})
}
