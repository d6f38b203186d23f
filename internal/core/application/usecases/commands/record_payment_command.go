package commands

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand records the time an external payment was captured.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	bookingID booking.ID
	paidAt    time.Time

	guard guard.ConstructorGuard
}

func NewRecordPaymentCommand(bookingID string, paidAt time.Time) (RecordPaymentCommand, error) {
	id, idErr := parseBookingID(bookingID)

	var paidAtErr error
	if paidAt.IsZero() {
		paidAtErr = errs.NewValueIsRequiredError("paidAt")
	}
	if err := errors.Join(idErr, paidAtErr); err != nil {
		return RecordPaymentCommand{}, err
	}

	return RecordPaymentCommand{
		bookingID: id,
		paidAt:    paidAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

func (c RecordPaymentCommand) BookingID() booking.ID { return c.bookingID }
func (c RecordPaymentCommand) PaidAt() time.Time     { return c.paidAt }
