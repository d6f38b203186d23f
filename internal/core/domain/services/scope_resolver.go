package services

import (
	"errors"
	"fmt"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/customer"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

var (
	// ErrForbidden is returned when the principal's role does not allow the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrCustomerNotFound is returned when an officer books on behalf of a
	// customer that does not exist. It also matches errs.ErrObjectNotFound.
	ErrCustomerNotFound = errors.New("customer not found")
)

// NewCustomerNotFoundError wraps both ErrCustomerNotFound and an
// errs.ObjectNotFoundError for customerID.
func NewCustomerNotFoundError(customerID string) error {
	return fmt.Errorf("%w: %w", ErrCustomerNotFound, errs.NewObjectNotFoundError("customerId", customerID))
}

// ListingScope restricts a booking listing to one owner. An empty OwnerID
// means every booking is visible.
type ListingScope struct {
	OwnerID string
}

func (s ListingScope) IsUnrestricted() bool {
	return s.OwnerID == ""
}

// ScopeResolver applies the role and ownership rules for bookings.
//
// Business rules:
//   - a CUSTOMER books for themselves; an OFFICER books for a named customer,
//     or for themselves when no customer is named
//   - a CUSTOMER sees and cancels only their own bookings; anything else is
//     reported as not found so existence is never confirmed
//   - an OFFICER sees and cancels every booking
type ScopeResolver struct{}

func NewScopeResolver() ScopeResolver {
	return ScopeResolver{}
}

// CreationOwner returns the identity that will own a new booking.
//
// Parameters:
//   - principal: the authenticated caller
//   - asOfficer: true for officer-on-behalf creation
//   - requestedCustomerID: the customer named by the officer, may be empty
//   - target: the account loaded for requestedCustomerID, nil when it does not exist
//
// Returns ErrForbidden when a non-officer asks for officer creation and
// ErrCustomerNotFound when the named customer does not resolve to a customer account.
func (ScopeResolver) CreationOwner(
	principal kernel.Principal,
	asOfficer bool,
	requestedCustomerID string,
	target *customer.Customer,
) (string, error) {
	if err := principal.Validate(); err != nil {
		return "", err
	}

	if !asOfficer {
		if !principal.IsCustomer() {
			return "", fmt.Errorf("%w: only customers book for themselves", ErrForbidden)
		}
		return principal.Identity(), nil
	}

	if !principal.IsOfficer() {
		return "", fmt.Errorf("%w: %s cannot book on behalf of a customer", ErrForbidden, principal.Role())
	}
	if requestedCustomerID == "" {
		return principal.Identity(), nil
	}
	if target == nil || target.Validate() != nil || !target.IsCustomer() || target.CustomerID() != requestedCustomerID {
		return "", NewCustomerNotFoundError(requestedCustomerID)
	}
	return target.CustomerID(), nil
}

// CanRead returns nil when principal may see b.
func (ScopeResolver) CanRead(principal kernel.Principal, b *booking.Booking) error {
	return ownsOrOfficer(principal, b)
}

// CanCancel returns nil when principal may cancel b. Status rules are checked
// by the booking itself.
func (ScopeResolver) CanCancel(principal kernel.Principal, b *booking.Booking) error {
	return ownsOrOfficer(principal, b)
}

// Listing returns the scope a listing by principal is confined to.
func (ScopeResolver) Listing(principal kernel.Principal) (ListingScope, error) {
	if err := principal.Validate(); err != nil {
		return ListingScope{}, err
	}
	if principal.IsOfficer() {
		return ListingScope{}, nil
	}
	return ListingScope{OwnerID: principal.Identity()}, nil
}

func ownsOrOfficer(principal kernel.Principal, b *booking.Booking) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if principal.IsOfficer() || b.IsOwnedBy(principal.Identity()) {
		return nil
	}
	return errs.NewObjectNotFoundError("bookingId", b.ID())
}
