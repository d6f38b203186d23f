package http

import (
	"errors"
	"time"

	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/generated/servers"
)

func newReceiver(req servers.BookingRequest) (booking.Receiver, error) {
	return booking.NewReceiver(req.ReceiverName, req.ReceiverAddress, req.ReceiverPin, req.ReceiverMobile)
}

func newParcel(
	weightGrams int,
	contents string,
	delivery servers.DeliveryType,
	packing servers.PackingPreference,
) (booking.Parcel, error) {
	d, deliveryErr := pricing.ParseDeliveryType(string(delivery))
	p, packingErr := pricing.ParsePackingPreference(string(packing))
	if err := errors.Join(deliveryErr, packingErr); err != nil {
		return booking.Parcel{}, err
	}
	return booking.NewParcel(weightGrams, contents, d, p)
}

type queryFilters struct {
	customerID *string
	bookingID  *string
	status     *servers.BookingStatus
	startDate  *time.Time
	endDate    *time.Time
}

func (f queryFilters) toFilters() (queries.ListBookingsFilters, error) {
	filters := queries.ListBookingsFilters{
		CustomerID:  deref(f.customerID),
		BookingID:   deref(f.bookingID),
		CreatedFrom: f.startDate,
		CreatedTo:   f.endDate,
	}
	if f.status != nil && *f.status != "" {
		status, err := booking.ParseStatus(string(*f.status))
		if err != nil {
			return queries.ListBookingsFilters{}, err
		}
		filters.Status = &status
	}
	return filters, nil
}

func toBooking(view queries.BookingView) servers.Booking {
	return servers.Booking{
		BookingId:                 view.BookingID,
		CustomerId:                view.OwnerID,
		CustomerName:              optional(view.OwnerName),
		Address:                   optional(view.OwnerAddress),
		ContactDetails:            optional(view.OwnerContact),
		ReceiverName:              view.ReceiverName,
		ReceiverAddress:           view.ReceiverAddress,
		ReceiverPin:               view.ReceiverPinCode,
		ReceiverMobile:            view.ReceiverMobile,
		ParcelWeightInGram:        view.ParcelWeightGrams,
		ParcelContentsDescription: view.ParcelContents,
		ParcelDeliveryType:        servers.DeliveryType(view.DeliveryType),
		ParcelPackingPreference:   servers.PackingPreference(view.PackingPreference),
		ParcelPickupTime:          view.PickupTime,
		ParcelDropoffTime:         view.DropoffTime,
		BookedByOfficer:           view.BookedByOfficer,
		ServiceCost:               pricing.FormatAmount(view.ServiceCost),
		Status:                    servers.BookingStatus(view.Status),
		PaymentTime:               view.PaidAt,
		CreatedAt:                 view.CreatedAt,
		UpdatedAt:                 view.UpdatedAt,
	}
}

func toBookingPage(resp queries.ListBookingsQueryResponse) servers.BookingPage {
	content := make([]servers.Booking, 0, len(resp.Items))
	for _, item := range resp.Items {
		content = append(content, toBooking(item))
	}
	return servers.BookingPage{
		Content:       content,
		Page:          resp.Page,
		Size:          resp.Size,
		TotalElements: resp.TotalElements,
		TotalPages:    resp.TotalPages,
	}
}

func toCostQuote(q pricing.Quote) servers.CostQuote {
	return servers.CostQuote{
		TotalCost: pricing.FormatAmount(q.Total),
		Breakdown: servers.CostBreakdown{
			BaseRate:       pricing.FormatAmount(q.Base),
			WeightCharge:   pricing.FormatAmount(q.WeightCharge),
			DeliveryCharge: pricing.FormatAmount(q.DeliveryCharge),
			PackingCharge:  pricing.FormatAmount(q.PackingCharge),
			AdminFee:       pricing.FormatAmount(q.AdminFee),
			Subtotal:       pricing.FormatAmount(q.Subtotal),
			TaxRate:        q.SurchargeRate.String(),
			Tax:            pricing.FormatAmount(q.Surcharge),
		},
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
