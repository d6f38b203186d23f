package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil error, so an unconstructed value never validates silently.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the value embedding it was produced by its
// constructor. The flag is set only by NewConstructorGuard; a struct literal or
// a zero value carries an unset guard and fails Validate.
//
// The guard holds no other state and is copied along with the value that
// embeds it, so value objects stay comparable with ==.
//
// Example:
//
//	type Receiver struct {
//	    name    string
//	    pinCode string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (r Receiver) Validate() error {
//	    return r.guard.Validate(ErrReceiverNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Constructors call
// it last, once every field has passed validation:
//
//	return Schedule{pickup: pickup, dropoff: dropoff, guard: guard.NewConstructorGuard()}, nil
//
// Returns:
//   - a ConstructorGuard whose Validate reports nil
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded value was built by its constructor.
//
// Parameters:
//   - validationError: the error describing the unconstructed type, usually an
//     Err...IsNotConstructed sentinel; nil selects ErrDefaultConstructorGuard
//
// Returns:
//   - nil if the value came from its constructor
//   - validationError otherwise
//   - ErrDefaultConstructorGuard if validationError is nil and the value is unconstructed
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
