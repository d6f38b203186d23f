package commands

import (
	"errors"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/pkg/guard"
)

var ErrReviseBookingParcelCommandIsNotConstructed = errors.New(
	"ReviseBookingParcelCommand must be created via NewReviseBookingParcelCommand constructor",
)

// ReviseBookingParcelCommand replaces weight, contents, delivery type and
// packing preference of a booking. Officer only.
type ReviseBookingParcelCommand struct { //nolint:recvcheck //using for validation
	bookingID booking.ID
	parcel    booking.Parcel

	guard guard.ConstructorGuard
}

func NewReviseBookingParcelCommand(bookingID string, parcel booking.Parcel) (ReviseBookingParcelCommand, error) {
	id, idErr := parseBookingID(bookingID)
	if err := errors.Join(idErr, parcel.Validate()); err != nil {
		return ReviseBookingParcelCommand{}, err
	}

	return ReviseBookingParcelCommand{
		bookingID: id,
		parcel:    parcel,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReviseBookingParcelCommand) Validate() error {
	return c.guard.Validate(ErrReviseBookingParcelCommandIsNotConstructed)
}

func (c ReviseBookingParcelCommand) BookingID() booking.ID  { return c.bookingID }
func (c ReviseBookingParcelCommand) Parcel() booking.Parcel { return c.parcel }
