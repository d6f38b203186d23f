package queries

import (
	"context"

	"parcel/internal/core/domain/services"
)

// GetBookingQueryHandler loads a booking and applies the read rule. A customer
// asking for someone else's booking gets the same not-found error as for an
// unknown id.
type GetBookingQueryHandler struct {
	bookings  BookingReader
	customers CustomerReader
	resolver  services.ScopeResolver
}

func NewGetBookingQueryHandler(bookings BookingReader, customers CustomerReader) GetBookingQueryHandler {
	return GetBookingQueryHandler{
		bookings:  bookings,
		customers: customers,
		resolver:  services.NewScopeResolver(),
	}
}

func (h GetBookingQueryHandler) Handle(ctx context.Context, query GetBookingQuery) (BookingView, error) {
	if err := query.Validate(); err != nil {
		return BookingView{}, err
	}

	b, err := h.bookings.GetByBookingID(ctx, query.BookingID())
	if err != nil {
		return BookingView{}, err
	}
	if err = h.resolver.CanRead(query.Principal(), b); err != nil {
		return BookingView{}, err
	}

	owners, err := h.customers.GetMany(ctx, []string{b.OwnerID()})
	if err != nil {
		return BookingView{}, err
	}

	return newBookingView(b, owners[b.OwnerID()]), nil
}
