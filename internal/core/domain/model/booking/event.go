package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType doubles as the message routing key on the event bus.
type EventType string

const (
	EventCreated         EventType = "booking.created"
	EventStatusChanged   EventType = "booking.status_changed"
	EventScheduleUpdated EventType = "booking.schedule_updated"
	EventParcelRevised   EventType = "booking.parcel_revised"
	EventPaymentRecorded EventType = "booking.payment_recorded"
	EventCancelled       EventType = "booking.cancelled"
)

// Event is a fact about a booking recorded by the aggregate and published
// after the surrounding transaction commits.
type Event struct {
	Type           EventType
	BookingID      ID
	OwnerID        string
	Status         Status
	PreviousStatus Status
	ServiceCost    decimal.Decimal
	OccurredAt     time.Time
}
