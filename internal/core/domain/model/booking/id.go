package booking

import (
	"strings"

	"parcel/internal/pkg/errs"

	"github.com/oklog/ulid/v2"
)

const idPrefix = "BK"

// ID is the public, human readable booking identifier. It is assigned once at
// creation and never changes. The internal storage key is a separate kernel.UUID.
type ID struct {
	value string
}

// NewID returns a fresh identifier. ULIDs sort by creation time, so identifiers
// issued later compare greater.
func NewID() ID {
	return ID{value: idPrefix + ulid.Make().String()}
}

// ParseID accepts the canonical "BK<ULID>" form, case insensitive.
func ParseID(s string) (ID, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ID{}, errs.NewValueIsRequiredError("bookingId")
	}
	if !strings.HasPrefix(s, idPrefix) {
		return ID{}, errs.NewValueIsInvalidError("bookingId")
	}
	if _, err := ulid.ParseStrict(strings.TrimPrefix(s, idPrefix)); err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("bookingId", err)
	}
	return ID{value: s}, nil
}

func (id ID) String() string {
	return id.value
}

func (id ID) IsZero() bool {
	return id.value == ""
}

func (id ID) Validate() error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("bookingId")
	}
	return nil
}
