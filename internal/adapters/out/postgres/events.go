package postgres

import (
	"encoding/json"
	"time"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/core/ports"
)

// BookingEventPayload is the JSON body of a booking event on the bus.
type BookingEventPayload struct {
	EventType      string    `json:"eventType"`
	BookingID      string    `json:"bookingId"`
	OwnerID        string    `json:"ownerId"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	ServiceCost    string    `json:"serviceCost"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// outboxMessages drains the events of tracked bookings. An aggregate tracked
// twice yields its events once, since PullEvents empties the buffer.
func outboxMessages(tracked []trackedAggregate) ([]ports.OutboxMessage, error) {
	var messages []ports.OutboxMessage
	for _, t := range tracked {
		b, ok := t.Aggregate.(*booking.Booking)
		if !ok {
			continue
		}
		for _, event := range b.PullEvents() {
			message, err := newOutboxMessage(event)
			if err != nil {
				return nil, err
			}
			messages = append(messages, message)
		}
	}
	return messages, nil
}

func newOutboxMessage(event booking.Event) (ports.OutboxMessage, error) {
	payload := BookingEventPayload{
		EventType:   string(event.Type),
		BookingID:   event.BookingID.String(),
		OwnerID:     event.OwnerID,
		Status:      event.Status.String(),
		ServiceCost: pricing.FormatAmount(event.ServiceCost),
		OccurredAt:  event.OccurredAt.UTC(),
	}
	if event.PreviousStatus != booking.StatusUnknown {
		payload.PreviousStatus = event.PreviousStatus.String()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		AggregateID: payload.BookingID,
		EventType:   payload.EventType,
		Payload:     body,
		OccurredAt:  payload.OccurredAt,
	}, nil
}
