// Package customer holds the account read model the booking service needs:
// owner lookups for officer-on-behalf bookings and owner display fields.
// Account creation and credentials live outside this service.
package customer

import (
	"errors"
	"strings"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer")

// Customer is a registered account. Officers are accounts too, distinguished by role.
type Customer struct {
	key         kernel.UUID
	customerID  string
	name        string
	email       string
	countryCode string
	mobile      string
	address     string
	role        kernel.Role
	guard       guard.ConstructorGuard
}

func NewCustomer(
	key kernel.UUID,
	customerID, name, email, countryCode, mobile, address string,
	role kernel.Role,
) (*Customer, error) {
	c := &Customer{
		key:         key,
		customerID:  strings.TrimSpace(customerID),
		name:        strings.TrimSpace(name),
		email:       strings.TrimSpace(email),
		countryCode: strings.TrimSpace(countryCode),
		mobile:      strings.TrimSpace(mobile),
		address:     strings.TrimSpace(address),
		role:        role,
		guard:       guard.NewConstructorGuard(),
	}

	var roleErr error
	if role != kernel.RoleCustomer && role != kernel.RoleOfficer {
		roleErr = errs.NewValueIsOutOfRangeError("role", role, kernel.RoleCustomer, kernel.RoleOfficer)
	}
	if err := errors.Join(
		key.Validate(),
		required("customerId", c.customerID),
		required("customerName", c.name),
		roleErr,
	); err != nil {
		return nil, err
	}
	return c, nil
}

func required(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) Key() kernel.UUID    { return c.key }
func (c *Customer) CustomerID() string  { return c.customerID }
func (c *Customer) Name() string        { return c.name }
func (c *Customer) Email() string       { return c.email }
func (c *Customer) CountryCode() string { return c.countryCode }
func (c *Customer) Mobile() string      { return c.mobile }
func (c *Customer) Address() string     { return c.address }
func (c *Customer) Role() kernel.Role   { return c.role }

// IsCustomer reports whether the account may own bookings placed on its behalf.
func (c *Customer) IsCustomer() bool {
	return c.role == kernel.RoleCustomer
}

// ContactDetails joins country code and mobile number, e.g. "+91 9876543210".
func (c *Customer) ContactDetails() string {
	return strings.TrimSpace(c.countryCode + " " + c.mobile)
}
