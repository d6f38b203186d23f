package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/booking"
)

// RecordPaymentCommandHandler stores the payment time once; repeated calls are no-ops.
type RecordPaymentCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewRecordPaymentCommandHandler(uowFactory BookingUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{uowFactory: uowFactory}
}

func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateBooking(ctx, h.uowFactory, cmd.BookingID(), func(b *booking.Booking) (bool, error) {
		return b.RecordPayment(cmd.PaidAt(), time.Now())
	})
}
