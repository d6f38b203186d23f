// Package servers provides primitives to interact with the openapi HTTP API.
//
// The types and the echo bindings below mirror openapi.yaml one to one and
// follow the layout oapi-codegen produces for the echo server target.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for BookingStatus.
const (
	BookingStatusASSIGNED  BookingStatus = "ASSIGNED"
	BookingStatusBOOKED    BookingStatus = "BOOKED"
	BookingStatusCANCELLED BookingStatus = "CANCELLED"
	BookingStatusDELIVERED BookingStatus = "DELIVERED"
	BookingStatusINTRANSIT BookingStatus = "IN_TRANSIT"
	BookingStatusNEW       BookingStatus = "NEW"
	BookingStatusPICKEDUP  BookingStatus = "PICKED_UP"
	BookingStatusSCHEDULED BookingStatus = "SCHEDULED"
)

// Defines values for DeliveryType.
const (
	EXPRESS  DeliveryType = "EXPRESS"
	SAMEDAY  DeliveryType = "SAME_DAY"
	STANDARD DeliveryType = "STANDARD"
)

// Defines values for PackingPreference.
const (
	BASIC   PackingPreference = "BASIC"
	PREMIUM PackingPreference = "PREMIUM"
)

// ApiResponse defines model for ApiResponse.
type ApiResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
	Success bool        `json:"success"`
}

// Booking defines model for Booking.
type Booking struct {
	Address                   *string           `json:"address,omitempty"`
	BookedByOfficer           bool              `json:"bookedByOfficer"`
	BookingId                 string            `json:"bookingId"`
	ContactDetails            *string           `json:"contactDetails,omitempty"`
	CreatedAt                 time.Time         `json:"createdAt"`
	CustomerId                string            `json:"customerId"`
	CustomerName              *string           `json:"customerName,omitempty"`
	ParcelContentsDescription string            `json:"parcelContentsDescription"`
	ParcelDeliveryType        DeliveryType      `json:"parcelDeliveryType"`
	ParcelDropoffTime         *time.Time        `json:"parcelDropoffTime,omitempty"`
	ParcelPackingPreference   PackingPreference `json:"parcelPackingPreference"`
	ParcelPickupTime          *time.Time        `json:"parcelPickupTime,omitempty"`
	ParcelWeightInGram        int               `json:"parcelWeightInGram"`
	PaymentTime               *time.Time        `json:"paymentTime,omitempty"`
	ReceiverAddress           string            `json:"receiverAddress"`
	ReceiverMobile            string            `json:"receiverMobile"`
	ReceiverName              string            `json:"receiverName"`
	ReceiverPin               string            `json:"receiverPin"`

	// ServiceCost Amount with exactly two fractional digits, e.g. "105.00".
	ServiceCost string        `json:"serviceCost"`
	Status      BookingStatus `json:"status"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// BookingPage defines model for BookingPage.
type BookingPage struct {
	Content       []Booking `json:"content"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
}

// BookingRequest defines model for BookingRequest.
type BookingRequest struct {
	// CustomerId Owning customer, honoured on the officer endpoint only.
	CustomerId                *string           `json:"customerId,omitempty"`
	ParcelContentsDescription string            `json:"parcelContentsDescription"`
	ParcelDeliveryType        DeliveryType      `json:"parcelDeliveryType"`
	ParcelDropoffTime         *time.Time        `json:"parcelDropoffTime,omitempty"`
	ParcelPackingPreference   PackingPreference `json:"parcelPackingPreference"`
	ParcelPickupTime          *time.Time        `json:"parcelPickupTime,omitempty"`
	ParcelWeightInGram        int               `json:"parcelWeightInGram"`
	ReceiverAddress           string            `json:"receiverAddress"`
	ReceiverMobile            string            `json:"receiverMobile"`
	ReceiverName              string            `json:"receiverName"`
	ReceiverPin               string            `json:"receiverPin"`
}

// BookingStatus defines model for BookingStatus.
type BookingStatus string

// CostBreakdown defines model for CostBreakdown.
type CostBreakdown struct {
	AdminFee       string `json:"adminFee"`
	BaseRate       string `json:"baseRate"`
	DeliveryCharge string `json:"deliveryCharge"`
	PackingCharge  string `json:"packingCharge"`
	Subtotal       string `json:"subtotal"`
	Tax            string `json:"tax"`
	TaxRate        string `json:"taxRate"`
	WeightCharge   string `json:"weightCharge"`
}

// CostQuote defines model for CostQuote.
type CostQuote struct {
	Breakdown CostBreakdown `json:"breakdown"`
	TotalCost string        `json:"totalCost"`
}

// DeliveryType defines model for DeliveryType.
type DeliveryType string

// PackingPreference defines model for PackingPreference.
type PackingPreference string

// ParcelRevision defines model for ParcelRevision.
type ParcelRevision struct {
	ParcelContentsDescription string            `json:"parcelContentsDescription"`
	ParcelDeliveryType        DeliveryType      `json:"parcelDeliveryType"`
	ParcelPackingPreference   PackingPreference `json:"parcelPackingPreference"`
	ParcelWeightInGram        int               `json:"parcelWeightInGram"`
}

// PaymentRecord defines model for PaymentRecord.
type PaymentRecord struct {
	PaidAt time.Time `json:"paidAt"`
}

// ListCustomerBookingsParams defines parameters for ListCustomerBookings.
type ListCustomerBookingsParams struct {
	// Page Zero-based page index.
	Page *int `form:"page,omitempty" json:"page,omitempty"`

	// BookingId Substring of the booking identifier.
	BookingId *string        `form:"bookingId,omitempty" json:"bookingId,omitempty"`
	Status    *BookingStatus `form:"status,omitempty" json:"status,omitempty"`
	StartDate *time.Time     `form:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   *time.Time     `form:"endDate,omitempty" json:"endDate,omitempty"`
}

// ListOfficerBookingsParams defines parameters for ListOfficerBookings.
type ListOfficerBookingsParams struct {
	// Page Zero-based page index.
	Page *int `form:"page,omitempty" json:"page,omitempty"`

	// CustomerId Substring of the owning customer's identity.
	CustomerId *string `form:"customerId,omitempty" json:"customerId,omitempty"`

	// BookingId Substring of the booking identifier.
	BookingId *string        `form:"bookingId,omitempty" json:"bookingId,omitempty"`
	Status    *BookingStatus `form:"status,omitempty" json:"status,omitempty"`
	StartDate *time.Time     `form:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   *time.Time     `form:"endDate,omitempty" json:"endDate,omitempty"`
}

// UpdateBookingStatusParams defines parameters for UpdateBookingStatus.
type UpdateBookingStatusParams struct {
	Status BookingStatus `form:"status" json:"status"`
}

// UpdateBookingScheduleParams defines parameters for UpdateBookingSchedule.
type UpdateBookingScheduleParams struct {
	PickupTime  time.Time `form:"pickupTime" json:"pickupTime"`
	DropoffTime time.Time `form:"dropoffTime" json:"dropoffTime"`
}

// CalculateCostParams defines parameters for CalculateCost.
type CalculateCostParams struct {
	Weight            int               `form:"weight" json:"weight"`
	DeliveryType      DeliveryType      `form:"deliveryType" json:"deliveryType"`
	PackingPreference PackingPreference `form:"packingPreference" json:"packingPreference"`
	IsOfficerBooking  *bool             `form:"isOfficerBooking,omitempty" json:"isOfficerBooking,omitempty"`
}

// CreateCustomerBookingJSONRequestBody defines body for CreateCustomerBooking for application/json ContentType.
type CreateCustomerBookingJSONRequestBody = BookingRequest

// CreateOfficerBookingJSONRequestBody defines body for CreateOfficerBooking for application/json ContentType.
type CreateOfficerBookingJSONRequestBody = BookingRequest

// ReviseBookingParcelJSONRequestBody defines body for ReviseBookingParcel for application/json ContentType.
type ReviseBookingParcelJSONRequestBody = ParcelRevision

// RecordBookingPaymentJSONRequestBody defines body for RecordBookingPayment for application/json ContentType.
type RecordBookingPaymentJSONRequestBody = PaymentRecord

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Quote the service cost without creating a booking
	// (POST /api/common/calculate-cost)
	CalculateCost(ctx echo.Context, params CalculateCostParams) error
	// Fetch one booking visible to the caller
	// (GET /api/common/bookings/{bookingId})
	GetBooking(ctx echo.Context, bookingId string) error
	// List the authenticated customer's bookings, newest first
	// (GET /api/customer/bookings)
	ListCustomerBookings(ctx echo.Context, params ListCustomerBookingsParams) error
	// Create a booking for the authenticated customer
	// (POST /api/customer/bookings)
	CreateCustomerBooking(ctx echo.Context) error
	// Cancel one of the authenticated customer's bookings
	// (POST /api/customer/bookings/{bookingId}/cancel)
	CancelCustomerBooking(ctx echo.Context, bookingId string) error
	// List every booking, newest first
	// (GET /api/officer/bookings)
	ListOfficerBookings(ctx echo.Context, params ListOfficerBookingsParams) error
	// Create a booking on behalf of a customer
	// (POST /api/officer/bookings)
	CreateOfficerBooking(ctx echo.Context) error
	// Cancel any booking
	// (POST /api/officer/bookings/{bookingId}/cancel)
	CancelOfficerBooking(ctx echo.Context, bookingId string) error
	// Replace the parcel details and reprice the booking
	// (PUT /api/officer/bookings/{bookingId}/parcel)
	ReviseBookingParcel(ctx echo.Context, bookingId string) error
	// Record the time a payment was captured
	// (PUT /api/officer/bookings/{bookingId}/payment)
	RecordBookingPayment(ctx echo.Context, bookingId string) error
	// Replace pickup and drop-off times
	// (PUT /api/officer/bookings/{bookingId}/schedule)
	UpdateBookingSchedule(ctx echo.Context, bookingId string, params UpdateBookingScheduleParams) error
	// Set the lifecycle status of a booking
	// (PUT /api/officer/bookings/{bookingId}/status)
	UpdateBookingStatus(ctx echo.Context, bookingId string, params UpdateBookingStatusParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CalculateCost converts echo context to params.
func (w *ServerInterfaceWrapper) CalculateCost(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params CalculateCostParams
	// ------------- Required query parameter "weight" -------------

	err = runtime.BindQueryParameter("form", true, true, "weight", ctx.QueryParams(), &params.Weight)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter weight: %s", err))
	}

	// ------------- Required query parameter "deliveryType" -------------

	err = runtime.BindQueryParameter("form", true, true, "deliveryType", ctx.QueryParams(), &params.DeliveryType)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryType: %s", err))
	}

	// ------------- Required query parameter "packingPreference" -------------

	err = runtime.BindQueryParameter("form", true, true, "packingPreference", ctx.QueryParams(), &params.PackingPreference)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter packingPreference: %s", err))
	}

	// ------------- Optional query parameter "isOfficerBooking" -------------

	err = runtime.BindQueryParameter("form", true, false, "isOfficerBooking", ctx.QueryParams(), &params.IsOfficerBooking)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter isOfficerBooking: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CalculateCost(ctx, params)
	return err
}

// GetBooking converts echo context to params.
func (w *ServerInterfaceWrapper) GetBooking(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "bookingId" -------------
	var bookingId string

	err = runtime.BindStyledParameterWithOptions("simple", "bookingId", ctx.Param("bookingId"), &bookingId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bookingId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetBooking(ctx, bookingId)
	return err
}

// ListCustomerBookings converts echo context to params.
func (w *ServerInterfaceWrapper) ListCustomerBookings(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListCustomerBookingsParams
	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "bookingId" -------------

	err = runtime.BindQueryParameter("form", true, false, "bookingId", ctx.QueryParams(), &params.BookingId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bookingId: %s", err))
	}

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "startDate" -------------

	err = runtime.BindQueryParameter("form", true, false, "startDate", ctx.QueryParams(), &params.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter startDate: %s", err))
	}

	// ------------- Optional query parameter "endDate" -------------

	err = runtime.BindQueryParameter("form", true, false, "endDate", ctx.QueryParams(), &params.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter endDate: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListCustomerBookings(ctx, params)
	return err
}

// CreateCustomerBooking converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCustomerBooking(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateCustomerBooking(ctx)
	return err
}

// CancelCustomerBooking converts echo context to params.
func (w *ServerInterfaceWrapper) CancelCustomerBooking(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "bookingId" -------------
	var bookingId string

	err = runtime.BindStyledParameterWithOptions("simple", "bookingId", ctx.Param("bookingId"), &bookingId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bookingId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelCustomerBooking(ctx, bookingId)
	return err
}

// ListOfficerBookings converts echo context to params.
func (w *ServerInterfaceWrapper) ListOfficerBookings(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOfficerBookingsParams
	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "customerId" -------------

	err = runtime.BindQueryParameter("form", true, false, "customerId", ctx.QueryParams(), &params.CustomerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	// ------------- Optional query parameter "bookingId" -------------

	err = runtime.BindQueryParameter("form", true, false, "bookingId", ctx.QueryParams(), &params.BookingId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bookingId: %s", err))
	}

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "startDate" -------------

	err = runtime.BindQueryParameter("form", true, false, "startDate", ctx.QueryParams(), &params.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter startDate: %s", err))
	}

	// ------------- Optional query parameter "endDate" -------------

	err = runtime.BindQueryParameter("form", true, false, "endDate", ctx.QueryParams(), &params.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter endDate: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOfficerBookings(ctx, params)
	return err
}

// CreateOfficerBooking converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOfficerBooking(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOfficerBooking(ctx)
	return err
}

// CancelOfficerBooking converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOfficerBooking(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "bookingId" -------------
	var bookingId string

	err = runtime.BindStyledParameterWithOptions("simple", "bookingId", ctx.Param("bookingId"), &bookingId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bookingId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelOfficerBooking(ctx, bookingId)
	return err
}

// ReviseBookingParcel converts echo context to params.
func (w *ServerInterfaceWrapper) ReviseBookingParcel(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "bookingId" -------------
	var bookingId string

	err = runtime.BindStyledParameterWithOptions("simple", "bookingId", ctx.Param("bookingId"), &bookingId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bookingId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ReviseBookingParcel(ctx, bookingId)
	return err
}

// RecordBookingPayment converts echo context to params.
func (w *ServerInterfaceWrapper) RecordBookingPayment(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "bookingId" -------------
	var bookingId string

	err = runtime.BindStyledParameterWithOptions("simple", "bookingId", ctx.Param("bookingId"), &bookingId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bookingId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RecordBookingPayment(ctx, bookingId)
	return err
}

// UpdateBookingSchedule converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateBookingSchedule(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "bookingId" -------------
	var bookingId string

	err = runtime.BindStyledParameterWithOptions("simple", "bookingId", ctx.Param("bookingId"), &bookingId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bookingId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params UpdateBookingScheduleParams
	// ------------- Required query parameter "pickupTime" -------------

	err = runtime.BindQueryParameter("form", true, true, "pickupTime", ctx.QueryParams(), &params.PickupTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter pickupTime: %s", err))
	}

	// ------------- Required query parameter "dropoffTime" -------------

	err = runtime.BindQueryParameter("form", true, true, "dropoffTime", ctx.QueryParams(), &params.DropoffTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter dropoffTime: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateBookingSchedule(ctx, bookingId, params)
	return err
}

// UpdateBookingStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateBookingStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "bookingId" -------------
	var bookingId string

	err = runtime.BindStyledParameterWithOptions("simple", "bookingId", ctx.Param("bookingId"), &bookingId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bookingId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params UpdateBookingStatusParams
	// ------------- Required query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, true, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateBookingStatus(ctx, bookingId, params)
	return err
}

// EchoRouter is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/common/calculate-cost", wrapper.CalculateCost)
	router.GET(baseURL+"/api/common/bookings/:bookingId", wrapper.GetBooking)
	router.GET(baseURL+"/api/customer/bookings", wrapper.ListCustomerBookings)
	router.POST(baseURL+"/api/customer/bookings", wrapper.CreateCustomerBooking)
	router.POST(baseURL+"/api/customer/bookings/:bookingId/cancel", wrapper.CancelCustomerBooking)
	router.GET(baseURL+"/api/officer/bookings", wrapper.ListOfficerBookings)
	router.POST(baseURL+"/api/officer/bookings", wrapper.CreateOfficerBooking)
	router.POST(baseURL+"/api/officer/bookings/:bookingId/cancel", wrapper.CancelOfficerBooking)
	router.PUT(baseURL+"/api/officer/bookings/:bookingId/parcel", wrapper.ReviseBookingParcel)
	router.PUT(baseURL+"/api/officer/bookings/:bookingId/payment", wrapper.RecordBookingPayment)
	router.PUT(baseURL+"/api/officer/bookings/:bookingId/schedule", wrapper.UpdateBookingSchedule)
	router.PUT(baseURL+"/api/officer/bookings/:bookingId/status", wrapper.UpdateBookingStatus)

}
