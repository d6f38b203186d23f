package booking

import (
	"errors"
	"fmt"
	"strings"

	"parcel/internal/pkg/errs"
)

var (
	// ErrInvalidTransition is returned when a terminal booking is asked to change.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrIllegalCancellation is returned when cancelling a booking that is in
	// transit or already delivered.
	ErrIllegalCancellation = errors.New("illegal cancellation")
)

// Status is the lifecycle state of a booking.
//
//	NEW ─> SCHEDULED ─> PICKED_UP ─> ASSIGNED ─> BOOKED ─> IN_TRANSIT ─> DELIVERED
//	 │         │            │            │          │
//	 └─────────┴────────────┴────────────┴──────────┴──────> CANCELLED
//
// DELIVERED and CANCELLED are terminal. Between non-terminal states the order
// is not enforced: an officer may set any status, including moving backwards.
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota
	StatusNew
	StatusScheduled
	StatusPickedUp
	StatusAssigned
	StatusBooked
	StatusInTransit
	StatusDelivered
	StatusCancelled
)

var statusNames = map[Status]string{
	StatusNew:       "NEW",
	StatusScheduled: "SCHEDULED",
	StatusPickedUp:  "PICKED_UP",
	StatusAssigned:  "ASSIGNED",
	StatusBooked:    "BOOKED",
	StatusInTransit: "IN_TRANSIT",
	StatusDelivered: "DELIVERED",
	StatusCancelled: "CANCELLED",
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{
		StatusNew, StatusScheduled, StatusPickedUp, StatusAssigned,
		StatusBooked, StatusInTransit, StatusDelivered, StatusCancelled,
	}
}

func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a booking status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further change is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ValidateMutable fails with ErrInvalidTransition on a terminal status.
func (s Status) ValidateMutable() error {
	if s.IsTerminal() {
		return fmt.Errorf("%w: booking is already %s", ErrInvalidTransition, s)
	}
	return nil
}

// ChangeTo returns target if s is not terminal.
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if err := s.ValidateMutable(); err != nil {
		return StatusUnknown, err
	}
	return target, nil
}

// CanCancel reports whether Cancel would succeed.
func (s Status) CanCancel() bool {
	return s != StatusDelivered && s != StatusInTransit
}

// Cancel returns StatusCancelled unless the parcel is in transit or delivered.
// Cancelling an already cancelled booking is allowed and changes nothing.
func (s Status) Cancel() (Status, error) {
	if !s.CanCancel() {
		return StatusUnknown, fmt.Errorf("%w: booking is %s", ErrIllegalCancellation, s)
	}
	return StatusCancelled, nil
}
