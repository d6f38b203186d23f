package queries

import (
	"errors"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetBookingQueryIsNotConstructed = errors.New(
	"GetBookingQuery must be created via NewGetBookingQuery constructor",
)

// GetBookingQuery retrieves one booking as seen by principal.
//
// Example:
//
//	query, err := NewGetBookingQuery(principal, "BK01J9Z3T6Y8M0Q4W2E5R7T9Y1U3")
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetBookingQuery struct {
	principal kernel.Principal
	bookingID booking.ID

	guard guard.ConstructorGuard
}

// NewGetBookingQuery fails with errs.ErrObjectNotFound for a malformed booking id.
func NewGetBookingQuery(principal kernel.Principal, bookingID string) (GetBookingQuery, error) {
	id, idErr := parseBookingID(bookingID)
	if err := errors.Join(principal.Validate(), idErr); err != nil {
		return GetBookingQuery{}, err
	}

	return GetBookingQuery{
		principal: principal,
		bookingID: id,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetBookingQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingQueryIsNotConstructed)
}

func (q GetBookingQuery) Principal() kernel.Principal { return q.principal }
func (q GetBookingQuery) BookingID() booking.ID       { return q.bookingID }
