// Package queries contains the booking read operations. Queries never change
// state; they return projections shaped for the API layer.
package queries

import (
	"context"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/customer"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"
)

// BookingReader is the read side of ports.BookingRepository.
type BookingReader interface {
	GetByBookingID(ctx context.Context, id booking.ID) (*booking.Booking, error)
	List(ctx context.Context, filter ports.BookingFilter, page ports.PageRequest) (ports.BookingPage, error)
}

// CustomerReader resolves owner display fields.
type CustomerReader interface {
	GetMany(ctx context.Context, customerIDs []string) (map[string]*customer.Customer, error)
}

// parseBookingID treats a malformed identifier as an unknown one.
func parseBookingID(raw string) (booking.ID, error) {
	id, err := booking.ParseID(raw)
	if err != nil {
		return booking.ID{}, errs.NewObjectNotFoundErrorWithCause("bookingId", raw, err)
	}
	return id, nil
}
