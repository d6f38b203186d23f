// Package guard lets domain values tell a constructed instance from a zero value.
//
// Every value object, entity, command and query in the parcel service embeds a
// ConstructorGuard and reports a type-specific "not constructed" error from its
// Validate method. Handlers call Validate on their input before doing anything
// else, so a command assembled as a struct literal is rejected instead of being
// executed with empty fields.
//
// # Usage
//
//	var ErrWeightNotConstructed = errors.New("Weight must be created via NewWeight")
//
//	type Weight struct {
//	    weightGrams int
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewWeight(weightGrams int) (Weight, error) {
//	    if weightGrams < 1 {
//	        return Weight{}, errs.NewValueIsOutOfRangeError("weightGrams", weightGrams, 1, math.MaxInt32)
//	    }
//	    return Weight{weightGrams: weightGrams, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (w Weight) Validate() error {
//	    return w.guard.Validate(ErrWeightNotConstructed)
//	}
package guard
