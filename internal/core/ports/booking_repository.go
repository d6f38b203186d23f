package ports

import (
	"context"
	"math"
	"time"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/kernel"
)

// BookingFilter narrows a booking listing. Every field is optional; zero values
// do not filter.
type BookingFilter struct {
	// OwnerID restricts to one owner exactly. Set by the scope resolver, never by callers.
	OwnerID string

	// OwnerIDContains is a substring match on the owner identity (officer listings).
	OwnerIDContains string

	// BookingIDContains is a substring match on the public booking identifier.
	BookingIDContains string

	Status *booking.Status

	// CreatedFrom and CreatedTo bound the creation time, both inclusive.
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// PageRequest selects a zero-based page of a fixed size.
type PageRequest struct {
	Index int
	Size  int
}

// Offset is the number of rows before the page. It saturates at math.MaxInt
// instead of wrapping, so an unreachable page stays past the end.
func (p PageRequest) Offset() int {
	if p.Index <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Index > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Index * p.Size
}

// BookingPage is one page of a listing plus the total number of matches.
type BookingPage struct {
	Items []*booking.Booking
	Total int64
}

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// Add persists a new booking. Its key and booking id must not exist yet.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking. Identity, owner, creation
	// time and the booked-by-officer flag are never rewritten.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking by its internal key.
	Get(ctx context.Context, key kernel.UUID) (*booking.Booking, error)

	// GetByBookingID retrieves a booking by its public identifier.
	GetByBookingID(ctx context.Context, id booking.ID) (*booking.Booking, error)

	// GetByBookingIDForUpdate is GetByBookingID holding a row lock until the
	// surrounding transaction ends. Used by read-modify-write commands.
	GetByBookingIDForUpdate(ctx context.Context, id booking.ID) (*booking.Booking, error)

	// List returns matching bookings newest first, ties in insertion order.
	// A page past the end is empty, not an error.
	List(ctx context.Context, filter BookingFilter, page PageRequest) (BookingPage, error)
}
