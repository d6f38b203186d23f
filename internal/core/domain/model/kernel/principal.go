package kernel

import (
	"errors"
	"strings"

	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrPrincipalIsNotConstructed = errors.New("principal must be created via NewPrincipal")

// Role is the authorization role attached to an authenticated caller.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleOfficer
)

var roleNames = map[Role]string{
	RoleCustomer: "CUSTOMER",
	RoleOfficer:  "OFFICER",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseRole is case insensitive and tolerates the "ROLE_" prefix used by
// some identity providers.
func ParseRole(s string) (Role, error) {
	name := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "ROLE_")
	for role, roleName := range roleNames {
		if roleName == name {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role")
}

// Principal is the authenticated caller: a stable identity plus one role.
type Principal struct {
	identity string
	role     Role
	guard    guard.ConstructorGuard
}

func NewPrincipal(identity string, role Role) (Principal, error) {
	if strings.TrimSpace(identity) == "" {
		return Principal{}, errs.NewValueIsRequiredError("identity")
	}
	if _, ok := roleNames[role]; !ok {
		return Principal{}, errs.NewValueIsOutOfRangeError("role", role, RoleCustomer, RoleOfficer)
	}
	return Principal{
		identity: identity,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (p Principal) Identity() string {
	return p.identity
}

func (p Principal) Role() Role {
	return p.role
}

func (p Principal) IsOfficer() bool {
	return p.role == RoleOfficer
}

func (p Principal) IsCustomer() bool {
	return p.role == RoleCustomer
}

func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}
