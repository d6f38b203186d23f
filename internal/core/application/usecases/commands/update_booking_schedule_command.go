package commands

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrUpdateBookingScheduleCommandIsNotConstructed = errors.New(
	"UpdateBookingScheduleCommand must be created via NewUpdateBookingScheduleCommand constructor",
)

// UpdateBookingScheduleCommand sets pickup and drop-off together. Officer only.
type UpdateBookingScheduleCommand struct { //nolint:recvcheck //using for validation
	bookingID booking.ID
	schedule  booking.Schedule

	guard guard.ConstructorGuard
}

// NewUpdateBookingScheduleCommand requires both times; they cannot be set independently.
func NewUpdateBookingScheduleCommand(
	bookingID string,
	pickup time.Time,
	dropoff time.Time,
) (UpdateBookingScheduleCommand, error) {
	id, idErr := parseBookingID(bookingID)

	var pickupErr, dropoffErr error
	if pickup.IsZero() {
		pickupErr = errs.NewValueIsRequiredError("pickupTime")
	}
	if dropoff.IsZero() {
		dropoffErr = errs.NewValueIsRequiredError("dropoffTime")
	}
	if err := errors.Join(idErr, pickupErr, dropoffErr); err != nil {
		return UpdateBookingScheduleCommand{}, err
	}

	schedule, err := booking.NewSchedule(&pickup, &dropoff)
	if err != nil {
		return UpdateBookingScheduleCommand{}, err
	}

	return UpdateBookingScheduleCommand{
		bookingID: id,
		schedule:  schedule,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateBookingScheduleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookingScheduleCommandIsNotConstructed)
}

func (c UpdateBookingScheduleCommand) BookingID() booking.ID      { return c.bookingID }
func (c UpdateBookingScheduleCommand) Schedule() booking.Schedule { return c.schedule }
