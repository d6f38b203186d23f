package commands

import (
	"errors"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/pkg/guard"
)

var ErrUpdateBookingStatusCommandIsNotConstructed = errors.New(
	"UpdateBookingStatusCommand must be created via NewUpdateBookingStatusCommand constructor",
)

// UpdateBookingStatusCommand sets the lifecycle status of a booking. Officer only.
type UpdateBookingStatusCommand struct { //nolint:recvcheck //using for validation
	bookingID booking.ID
	status    booking.Status

	guard guard.ConstructorGuard
}

func NewUpdateBookingStatusCommand(bookingID string, status booking.Status) (UpdateBookingStatusCommand, error) {
	cmd := UpdateBookingStatusCommand{guard: guard.NewConstructorGuard()}

	id, idErr := parseBookingID(bookingID)
	if err := errors.Join(idErr, status.Validate()); err != nil {
		return UpdateBookingStatusCommand{}, err
	}

	cmd.bookingID = id
	cmd.status = status
	return cmd, nil
}

func (c UpdateBookingStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookingStatusCommandIsNotConstructed)
}

func (c UpdateBookingStatusCommand) BookingID() booking.ID { return c.bookingID }
func (c UpdateBookingStatusCommand) Status() booking.Status { return c.status }
