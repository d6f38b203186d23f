package queries

import (
	"time"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/customer"

	"github.com/shopspring/decimal"
)

// BookingView is the booking projection returned to callers.
//
// Owner fields are empty when the owning account no longer exists.
type BookingView struct {
	BookingID string

	OwnerID      string
	OwnerName    string
	OwnerAddress string
	OwnerContact string

	ReceiverName    string
	ReceiverAddress string
	ReceiverPinCode string
	ReceiverMobile  string

	ParcelWeightGrams       int
	ParcelContents          string
	DeliveryType            string
	PackingPreference       string
	BookedByOfficer         bool
	ServiceCost             decimal.Decimal
	Status                  string
	PickupTime, DropoffTime *time.Time
	PaidAt                  *time.Time
	CreatedAt, UpdatedAt    time.Time
}

func newBookingView(b *booking.Booking, owner *customer.Customer) BookingView {
	view := BookingView{
		BookingID:         b.ID().String(),
		OwnerID:           b.OwnerID(),
		ReceiverName:      b.Receiver().Name(),
		ReceiverAddress:   b.Receiver().Address(),
		ReceiverPinCode:   b.Receiver().PinCode(),
		ReceiverMobile:    b.Receiver().Mobile(),
		ParcelWeightGrams: b.Parcel().WeightGrams(),
		ParcelContents:    b.Parcel().Contents(),
		DeliveryType:      b.Parcel().DeliveryType().String(),
		PackingPreference: b.Parcel().PackingPreference().String(),
		BookedByOfficer:   b.BookedByOfficer(),
		ServiceCost:       b.ServiceCost(),
		Status:            b.Status().String(),
		PickupTime:        b.Schedule().Pickup(),
		DropoffTime:       b.Schedule().Dropoff(),
		PaidAt:            b.PaidAt(),
		CreatedAt:         b.CreatedAt(),
		UpdatedAt:         b.UpdatedAt(),
	}
	if owner != nil {
		view.OwnerName = owner.Name()
		view.OwnerAddress = owner.Address()
		view.OwnerContact = owner.ContactDetails()
	}
	return view
}
