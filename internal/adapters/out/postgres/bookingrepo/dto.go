// Package bookingrepo persists booking aggregates with GORM. One row per
// booking; the public booking id and the internal key are both unique.
package bookingrepo

import (
	"time"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingDTO is the row layout of the bookings table.
//
// Seq is assigned by the database on insert and breaks ties between bookings
// created in the same microsecond. Timestamps are written from the aggregate,
// GORM's automatic time tracking is switched off.
type BookingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int64     `gorm:"autoIncrement;not null;uniqueIndex"`
	BookingID string    `gorm:"size:32;not null;uniqueIndex"`
	OwnerID   string    `gorm:"size:64;not null;index"`

	ReceiverName    string `gorm:"not null"`
	ReceiverAddress string `gorm:"not null"`
	ReceiverPin     string `gorm:"size:6;not null"`
	ReceiverMobile  string `gorm:"size:10;not null"`

	ParcelWeightGrams       int    `gorm:"not null"`
	ParcelContents          string `gorm:"not null"`
	ParcelDeliveryType      string `gorm:"size:16;not null"`
	ParcelPackingPreference string `gorm:"size:16;not null"`

	PickupTime  *time.Time
	DropoffTime *time.Time

	BookedByOfficer bool            `gorm:"not null"`
	ServiceCost     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status          string          `gorm:"size:16;not null;index"`
	PaidAt          *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime:false;not null;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (BookingDTO) TableName() string {
	return "bookings"
}

// mutableColumns are rewritten by Update. Key, booking id, owner, creation
// time and the booked-by-officer flag are fixed at insert.
var mutableColumns = []string{
	"receiver_name", "receiver_address", "receiver_pin", "receiver_mobile",
	"parcel_weight_grams", "parcel_contents", "parcel_delivery_type", "parcel_packing_preference",
	"pickup_time", "dropoff_time",
	"service_cost", "status", "paid_at", "updated_at",
}

func fromDomain(b *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:                      b.Key().Bytes(),
		BookingID:               b.ID().String(),
		OwnerID:                 b.OwnerID(),
		ReceiverName:            b.Receiver().Name(),
		ReceiverAddress:         b.Receiver().Address(),
		ReceiverPin:             b.Receiver().PinCode(),
		ReceiverMobile:          b.Receiver().Mobile(),
		ParcelWeightGrams:       b.Parcel().WeightGrams(),
		ParcelContents:          b.Parcel().Contents(),
		ParcelDeliveryType:      b.Parcel().DeliveryType().String(),
		ParcelPackingPreference: b.Parcel().PackingPreference().String(),
		PickupTime:              b.Schedule().Pickup(),
		DropoffTime:             b.Schedule().Dropoff(),
		BookedByOfficer:         b.BookedByOfficer(),
		ServiceCost:             b.ServiceCost(),
		Status:                  b.Status().String(),
		PaidAt:                  b.PaidAt(),
		CreatedAt:               b.CreatedAt(),
		UpdatedAt:               b.UpdatedAt(),
	}
}

// toDomain rebuilds the aggregate through the same constructors used at intake,
// so a row that no longer satisfies the rules fails loudly instead of loading.
func toDomain(dto BookingDTO) (*booking.Booking, error) {
	key, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	id, err := booking.ParseID(dto.BookingID)
	if err != nil {
		return nil, err
	}
	receiver, err := booking.NewReceiver(dto.ReceiverName, dto.ReceiverAddress, dto.ReceiverPin, dto.ReceiverMobile)
	if err != nil {
		return nil, err
	}
	delivery, err := pricing.ParseDeliveryType(dto.ParcelDeliveryType)
	if err != nil {
		return nil, err
	}
	packing, err := pricing.ParsePackingPreference(dto.ParcelPackingPreference)
	if err != nil {
		return nil, err
	}
	parcel, err := booking.NewParcel(dto.ParcelWeightGrams, dto.ParcelContents, delivery, packing)
	if err != nil {
		return nil, err
	}
	schedule, err := booking.NewSchedule(dto.PickupTime, dto.DropoffTime)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(booking.Snapshot{
		Key:             key,
		ID:              id,
		OwnerID:         dto.OwnerID,
		Receiver:        receiver,
		Parcel:          parcel,
		Schedule:        schedule,
		BookedByOfficer: dto.BookedByOfficer,
		Status:          status,
		PaidAt:          dto.PaidAt,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}
