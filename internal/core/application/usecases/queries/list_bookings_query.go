package queries

import (
	"errors"
	"math"
	"strings"
	"time"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

// MaxPage is the largest page index a listing accepts.
const MaxPage = math.MaxInt32

var ErrListBookingsQueryIsNotConstructed = errors.New(
	"ListBookingsQuery must be created via NewListBookingsQuery constructor",
)

// ListBookingsFilters are the optional listing filters. Zero values do not filter.
type ListBookingsFilters struct {
	// CustomerID is a substring of the owner identity. Only officers may use it;
	// it is ignored for customers, whose listing is always their own.
	CustomerID string

	// BookingID is a substring of the public booking identifier.
	BookingID string

	Status *booking.Status

	// CreatedFrom and CreatedTo are inclusive; either may be nil.
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// ListBookingsQuery lists bookings visible to principal, newest first.
type ListBookingsQuery struct {
	principal kernel.Principal
	filters   ListBookingsFilters
	page      int

	guard guard.ConstructorGuard
}

// NewListBookingsQuery takes a zero-based page index in [0, MaxPage].
func NewListBookingsQuery(principal kernel.Principal, filters ListBookingsFilters, page int) (ListBookingsQuery, error) {
	var pageErr, statusErr error
	if page < 0 || page > MaxPage {
		pageErr = errs.NewValueIsOutOfRangeError("page", page, 0, MaxPage)
	}
	if filters.Status != nil {
		statusErr = filters.Status.Validate()
	}
	if err := errors.Join(principal.Validate(), pageErr, statusErr); err != nil {
		return ListBookingsQuery{}, err
	}

	filters.CustomerID = strings.TrimSpace(filters.CustomerID)
	filters.BookingID = strings.ToUpper(strings.TrimSpace(filters.BookingID))
	filters.CreatedFrom = utc(filters.CreatedFrom)
	filters.CreatedTo = utc(filters.CreatedTo)

	return ListBookingsQuery{
		principal: principal,
		filters:   filters,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListBookingsQueryIsNotConstructed)
}

func (q ListBookingsQuery) Principal() kernel.Principal  { return q.principal }
func (q ListBookingsQuery) Filters() ListBookingsFilters { return q.filters }
func (q ListBookingsQuery) Page() int                    { return q.page }

// ListBookingsQueryResponse is one page of bookings with paging metadata.
type ListBookingsQueryResponse struct {
	Items         []BookingView
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
