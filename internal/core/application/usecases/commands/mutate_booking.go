package commands

import (
	"context"

	"parcel/internal/core/domain/model/booking"
)

// mutateBooking loads the booking under a row lock, applies change and writes
// the result in one transaction. change reports whether anything was modified;
// unchanged bookings are not written.
func mutateBooking(
	ctx context.Context,
	uowFactory BookingUoWFactory,
	id booking.ID,
	change func(b *booking.Booking) (bool, error),
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()
	b, err := bookingRepo.GetByBookingIDForUpdate(ctx, id)
	if err != nil {
		return err
	}

	changed, err := change(b)
	if err != nil {
		return err
	}

	if changed {
		if err = bookingRepo.Update(ctx, b); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
