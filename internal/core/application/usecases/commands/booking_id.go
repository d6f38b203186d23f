package commands

import (
	"parcel/internal/core/domain/model/booking"
	"parcel/internal/pkg/errs"
)

// parseBookingID treats an identifier that cannot exist as an unknown booking.
func parseBookingID(raw string) (booking.ID, error) {
	id, err := booking.ParseID(raw)
	if err != nil {
		return booking.ID{}, errs.NewObjectNotFoundErrorWithCause("bookingId", raw, err)
	}
	return id, nil
}
