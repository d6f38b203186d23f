package commands

import (
	"errors"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrCancelBookingCommandIsNotConstructed = errors.New(
	"CancelBookingCommand must be created via NewCancelBookingCommand constructor",
)

// CancelBookingCommand cancels a booking on behalf of principal.
type CancelBookingCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	bookingID booking.ID

	guard guard.ConstructorGuard
}

func NewCancelBookingCommand(principal kernel.Principal, bookingID string) (CancelBookingCommand, error) {
	id, idErr := parseBookingID(bookingID)
	if err := errors.Join(principal.Validate(), idErr); err != nil {
		return CancelBookingCommand{}, err
	}

	return CancelBookingCommand{
		principal: principal,
		bookingID: id,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CancelBookingCommand) Validate() error {
	return c.guard.Validate(ErrCancelBookingCommandIsNotConstructed)
}

func (c CancelBookingCommand) Principal() kernel.Principal { return c.principal }
func (c CancelBookingCommand) BookingID() booking.ID       { return c.bookingID }
