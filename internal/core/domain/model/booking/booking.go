package booking

import (
	"errors"
	"strings"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrBookingIsNotConstructed is returned when a Booking was not created through
// NewBooking or RestoreBooking.
var ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking")

// Booking is the aggregate root of a parcel delivery request.
//
// Booking follows these invariants:
//   - key, id and ownerID are set at creation and never change
//   - serviceCost equals pricing.Cost(parcel, bookedByOfficer) at all times
//   - bookedByOfficer is fixed at creation
//   - status starts at NEW and only changes through ChangeStatus and Cancel
//   - updatedAt moves on every mutation, createdAt never does
type Booking struct {
	// key is the internal storage identity
	key kernel.UUID

	// id is the public identifier shown to customers
	id ID

	// ownerID is the customer identity the booking belongs to
	ownerID string

	receiver Receiver
	parcel   Parcel
	schedule Schedule

	bookedByOfficer bool

	// serviceCost is derived, never set directly
	serviceCost decimal.Decimal

	status Status

	// paidAt is recorded from an external payment fact, nil until paid
	paidAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	events []Event
	guard  guard.ConstructorGuard
}

// NewBooking creates a booking in status NEW and prices it.
//
// Parameters:
//   - key: internal storage identity
//   - id: public booking identifier
//   - ownerID: identity of the owning customer (or the booking officer when no customer was named)
//   - receiver, parcel, schedule: validated value objects
//   - bookedByOfficer: whether an officer placed the booking, adds the admin fee
//   - now: creation time, also used as the first last-modified time
//
// A BookingCreated event is recorded on success.
func NewBooking(
	key kernel.UUID,
	id ID,
	ownerID string,
	receiver Receiver,
	parcel Parcel,
	schedule Schedule,
	bookedByOfficer bool,
	now time.Time,
) (*Booking, error) {
	now = Timestamp(now)
	b := &Booking{
		schedule:        schedule,
		bookedByOfficer: bookedByOfficer,
		status:          StatusNew,
		createdAt:       now,
		updatedAt:       now,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setKey(key),
		b.setID(id),
		b.setOwnerID(ownerID),
		b.setReceiver(receiver),
		b.setParcel(parcel),
	); err != nil {
		return nil, err
	}

	b.record(EventCreated, StatusUnknown, now)
	return b, nil
}

// Snapshot is the persisted state a Booking is restored from.
type Snapshot struct {
	Key             kernel.UUID
	ID              ID
	OwnerID         string
	Receiver        Receiver
	Parcel          Parcel
	Schedule        Schedule
	BookedByOfficer bool
	Status          Status
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RestoreBooking rebuilds a booking from storage without recording events.
// The service cost is recomputed from the parcel rather than trusted from the
// snapshot, so a restored booking always satisfies the pricing invariant.
func RestoreBooking(s Snapshot) (*Booking, error) {
	b := &Booking{
		schedule:        s.Schedule,
		bookedByOfficer: s.BookedByOfficer,
		paidAt:          normalize(s.PaidAt),
		createdAt:       Timestamp(s.CreatedAt),
		updatedAt:       Timestamp(s.UpdatedAt),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setKey(s.Key),
		b.setID(s.ID),
		b.setOwnerID(s.OwnerID),
		b.setReceiver(s.Receiver),
		b.setParcel(s.Parcel),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	b.status = s.Status
	return b, nil
}

func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.key.IsEqual(other.key)
}

func (b *Booking) Key() kernel.UUID             { return b.key }
func (b *Booking) ID() ID                       { return b.id }
func (b *Booking) OwnerID() string              { return b.ownerID }
func (b *Booking) Receiver() Receiver           { return b.receiver }
func (b *Booking) Parcel() Parcel               { return b.parcel }
func (b *Booking) Schedule() Schedule           { return b.schedule }
func (b *Booking) BookedByOfficer() bool        { return b.bookedByOfficer }
func (b *Booking) ServiceCost() decimal.Decimal { return b.serviceCost }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaidAt() *time.Time           { return copyTime(b.paidAt) }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

// IsOwnedBy reports whether identity owns the booking.
func (b *Booking) IsOwnedBy(identity string) bool {
	return identity != "" && b.ownerID == identity
}

// ChangeStatus applies an officer status update.
//
// Any valid status may be set while the booking is not terminal, in any order.
// A terminal booking fails with ErrInvalidTransition.
func (b *Booking) ChangeStatus(target Status, now time.Time) error {
	next, err := b.status.ChangeTo(target)
	if err != nil {
		return err
	}

	previous := b.status
	b.status = next
	b.touch(now)
	b.record(EventStatusChanged, previous, b.updatedAt)
	return nil
}

// Cancel moves the booking to CANCELLED and leaves every other field untouched.
// It fails with ErrIllegalCancellation while IN_TRANSIT or once DELIVERED.
// Cancelling a cancelled booking is a no-op.
func (b *Booking) Cancel(now time.Time) error {
	next, err := b.status.Cancel()
	if err != nil {
		return err
	}
	if b.status == next {
		return nil
	}

	previous := b.status
	b.status = next
	b.touch(now)
	b.record(EventCancelled, previous, b.updatedAt)
	return nil
}

// Reschedule replaces pickup and drop-off together. Terminal bookings are rejected.
func (b *Booking) Reschedule(schedule Schedule, now time.Time) error {
	if err := b.status.ValidateMutable(); err != nil {
		return err
	}

	b.schedule = schedule
	b.touch(now)
	b.record(EventScheduleUpdated, b.status, b.updatedAt)
	return nil
}

// ReviseParcel replaces the parcel details and recomputes the service cost.
// Terminal bookings are rejected.
func (b *Booking) ReviseParcel(parcel Parcel, now time.Time) error {
	if err := b.status.ValidateMutable(); err != nil {
		return err
	}
	if err := b.setParcel(parcel); err != nil {
		return err
	}

	b.touch(now)
	b.record(EventParcelRevised, b.status, b.updatedAt)
	return nil
}

// RecordPayment stores the time an external payment was captured. The first
// recorded time wins: later calls report changed=false and keep it. Cancelled
// bookings fail with ErrInvalidTransition; delivered ones may still be paid.
func (b *Booking) RecordPayment(paidAt time.Time, now time.Time) (bool, error) {
	if b.status == StatusCancelled {
		return false, b.status.ValidateMutable()
	}
	if paidAt.IsZero() {
		return false, errs.NewValueIsRequiredError("paidAt")
	}
	if b.paidAt != nil {
		return false, nil
	}

	paid := Timestamp(paidAt)
	b.paidAt = &paid
	b.touch(now)
	b.record(EventPaymentRecorded, b.status, b.updatedAt)
	return true, nil
}

// PullEvents returns the events recorded since the last call and clears them.
func (b *Booking) PullEvents() []Event {
	events := b.events
	b.events = nil
	return events
}

func (b *Booking) touch(now time.Time) {
	now = Timestamp(now)
	// keep updatedAt monotonic even if the caller's clock steps back
	if now.Before(b.updatedAt) {
		now = b.updatedAt
	}
	b.updatedAt = now
}

func (b *Booking) record(eventType EventType, previous Status, at time.Time) {
	b.events = append(b.events, Event{
		Type:           eventType,
		BookingID:      b.id,
		OwnerID:        b.ownerID,
		Status:         b.status,
		PreviousStatus: previous,
		ServiceCost:    b.serviceCost,
		OccurredAt:     at,
	})
}

func (b *Booking) setKey(key kernel.UUID) error {
	if err := key.Validate(); err != nil {
		return err
	}
	b.key = key
	return nil
}

func (b *Booking) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setOwnerID(ownerID string) error {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return errs.NewValueIsRequiredError("ownerId")
	}
	b.ownerID = ownerID
	return nil
}

func (b *Booking) setReceiver(receiver Receiver) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	b.receiver = receiver
	return nil
}

// setParcel is the only place serviceCost is written.
func (b *Booking) setParcel(parcel Parcel) error {
	if err := parcel.Validate(); err != nil {
		return err
	}
	cost, err := pricing.Cost(parcel.pricingInput(b.bookedByOfficer))
	if err != nil {
		return err
	}
	b.parcel = parcel
	b.serviceCost = cost
	return nil
}
