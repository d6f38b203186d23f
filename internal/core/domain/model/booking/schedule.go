package booking

import (
	"fmt"
	"time"

	"parcel/internal/pkg/errs"
)

// Schedule holds the optional pickup and drop-off times. Both are nil until set.
type Schedule struct {
	pickup  *time.Time
	dropoff *time.Time
}

// NewSchedule rejects a pickup that is later than the drop-off when both are given.
func NewSchedule(pickup, dropoff *time.Time) (Schedule, error) {
	s := Schedule{pickup: normalize(pickup), dropoff: normalize(dropoff)}
	if s.pickup != nil && s.dropoff != nil && s.pickup.After(*s.dropoff) {
		return Schedule{}, errs.NewValueIsInvalidErrorWithCause(
			"parcelPickupTime",
			fmt.Errorf("pickup %s is after drop-off %s", s.pickup.Format(time.RFC3339), s.dropoff.Format(time.RFC3339)),
		)
	}
	return s, nil
}

// Pickup returns a copy of the pickup time, nil when unset.
func (s Schedule) Pickup() *time.Time {
	return copyTime(s.pickup)
}

func (s Schedule) Dropoff() *time.Time {
	return copyTime(s.dropoff)
}

func (s Schedule) IsEmpty() bool {
	return s.pickup == nil && s.dropoff == nil
}

func normalize(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := Timestamp(*t)
	return &n
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Timestamp truncates t to the precision PostgreSQL stores and converts it to UTC,
// so values read back from storage compare equal to the ones written.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
