package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const (
	msgCustomerBookingCreated = "Booking created successfully. Please proceed to payment."
	msgOfficerBookingCreated  = "Booking created successfully. Payment to be collected at office."
	msgCustomerCancelled      = "Booking cancelled successfully"
	msgOfficerCancelled       = "Booking cancelled successfully and Booking Amount will be refunded to the customer account within 5 working days"
	msgBookingRetrieved       = "Booking retrieved successfully"
	msgBookingsRetrieved      = "Bookings retrieved successfully"
	msgStatusUpdated          = "Booking status updated successfully"
	msgScheduleUpdated        = "Booking schedule updated successfully"
	msgParcelRevised          = "Parcel details updated successfully"
	msgPaymentRecorded        = "Payment recorded successfully"
	msgCostCalculated         = "Cost calculated successfully"
)

type CreateBookingHandler interface {
	Handle(ctx context.Context, cmd commands.CreateBookingCommand) (booking.ID, error)
}

type CancelBookingHandler interface {
	Handle(ctx context.Context, cmd commands.CancelBookingCommand) error
}

type UpdateBookingStatusHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateBookingStatusCommand) error
}

type UpdateBookingScheduleHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateBookingScheduleCommand) error
}

type ReviseBookingParcelHandler interface {
	Handle(ctx context.Context, cmd commands.ReviseBookingParcelCommand) error
}

type RecordPaymentHandler interface {
	Handle(ctx context.Context, cmd commands.RecordPaymentCommand) error
}

type GetBookingHandler interface {
	Handle(ctx context.Context, query queries.GetBookingQuery) (queries.BookingView, error)
}

type ListBookingsHandler interface {
	Handle(ctx context.Context, query queries.ListBookingsQuery) (queries.ListBookingsQueryResponse, error)
}

type QuoteCostHandler interface {
	Handle(ctx context.Context, query queries.QuoteCostQuery) (pricing.Quote, error)
}

// OperationObserver is told the outcome of every booking use case call, reads
// included: get, list, quote, create, cancel, update_status, update_schedule,
// revise_parcel and record_payment.
type OperationObserver interface {
	ObserveBookingOperation(operation string, err error)
}

// Handlers groups the use cases the HTTP API is served by.
type Handlers struct {
	// Command handlers
	CreateBooking         CreateBookingHandler
	CancelBooking         CancelBookingHandler
	UpdateBookingStatus   UpdateBookingStatusHandler
	UpdateBookingSchedule UpdateBookingScheduleHandler
	ReviseBookingParcel   ReviseBookingParcelHandler
	RecordPayment         RecordPaymentHandler

	// Query handlers
	GetBooking   GetBookingHandler
	ListBookings ListBookingsHandler
	QuoteCost    QuoteCostHandler
}

func (h Handlers) validate() error {
	if h.CreateBooking == nil || h.CancelBooking == nil || h.UpdateBookingStatus == nil ||
		h.UpdateBookingSchedule == nil || h.ReviseBookingParcel == nil || h.RecordPayment == nil ||
		h.GetBooking == nil || h.ListBookings == nil || h.QuoteCost == nil {
		return errors.New("every use case handler must be set")
	}
	return nil
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	observer OperationObserver
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, observer OperationObserver, logger *slog.Logger) (*Server, error) {
	if err := handlers.validate(); err != nil {
		return nil, err
	}
	if observer == nil {
		observer = noopObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		observer: observer,
		logger:   logger.With("component", "http"),
	}, nil
}

// CreateCustomerBooking handles POST /api/customer/bookings.
func (s *Server) CreateCustomerBooking(ctx echo.Context) error {
	return s.createBooking(ctx, false, msgCustomerBookingCreated)
}

// CreateOfficerBooking handles POST /api/officer/bookings.
func (s *Server) CreateOfficerBooking(ctx echo.Context) error {
	return s.createBooking(ctx, true, msgOfficerBookingCreated)
}

func (s *Server) createBooking(ctx echo.Context, asOfficer bool, message string) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req servers.BookingRequest
	if err = ctx.Bind(&req); err != nil {
		return s.invalidBody(ctx)
	}

	receiver, receiverErr := newReceiver(req)
	parcel, parcelErr := newParcel(req.ParcelWeightInGram, req.ParcelContentsDescription,
		req.ParcelDeliveryType, req.ParcelPackingPreference)
	schedule, scheduleErr := booking.NewSchedule(req.ParcelPickupTime, req.ParcelDropoffTime)
	if err = errors.Join(receiverErr, parcelErr, scheduleErr); err != nil {
		return s.fail(ctx, err)
	}

	customerID := ""
	if asOfficer && req.CustomerId != nil {
		customerID = *req.CustomerId
	}

	cmd, err := commands.NewCreateBookingCommand(principal, asOfficer, customerID, receiver, parcel, schedule)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreateBooking.Handle(ctx.Request().Context(), cmd)
	s.observer.ObserveBookingOperation("create", err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithBooking(ctx, principal, id.String(), http.StatusCreated, message)
}

// GetBooking handles GET /api/common/bookings/{bookingId}.
func (s *Server) GetBooking(ctx echo.Context, bookingID string) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.readBooking(ctx, principal, bookingID)
	s.observer.ObserveBookingOperation("get", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respond(ctx, http.StatusOK, msgBookingRetrieved, toBooking(view))
}

// ListCustomerBookings handles GET /api/customer/bookings.
func (s *Server) ListCustomerBookings(ctx echo.Context, params servers.ListCustomerBookingsParams) error {
	return s.listBookings(ctx, params.Page, queryFilters{
		bookingID: params.BookingId,
		status:    params.Status,
		startDate: params.StartDate,
		endDate:   params.EndDate,
	})
}

// ListOfficerBookings handles GET /api/officer/bookings.
func (s *Server) ListOfficerBookings(ctx echo.Context, params servers.ListOfficerBookingsParams) error {
	return s.listBookings(ctx, params.Page, queryFilters{
		customerID: params.CustomerId,
		bookingID:  params.BookingId,
		status:     params.Status,
		startDate:  params.StartDate,
		endDate:    params.EndDate,
	})
}

func (s *Server) listBookings(ctx echo.Context, page *int, raw queryFilters) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	filters, err := raw.toFilters()
	if err != nil {
		return s.fail(ctx, err)
	}

	pageIndex := 0
	if page != nil {
		pageIndex = *page
	}

	query, err := queries.NewListBookingsQuery(principal, filters, pageIndex)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.handlers.ListBookings.Handle(ctx.Request().Context(), query)
	s.observer.ObserveBookingOperation("list", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respond(ctx, http.StatusOK, msgBookingsRetrieved, toBookingPage(resp))
}

// CancelCustomerBooking handles POST /api/customer/bookings/{bookingId}/cancel.
func (s *Server) CancelCustomerBooking(ctx echo.Context, bookingID string) error {
	return s.cancelBooking(ctx, bookingID, msgCustomerCancelled)
}

// CancelOfficerBooking handles POST /api/officer/bookings/{bookingId}/cancel.
func (s *Server) CancelOfficerBooking(ctx echo.Context, bookingID string) error {
	return s.cancelBooking(ctx, bookingID, msgOfficerCancelled)
}

func (s *Server) cancelBooking(ctx echo.Context, bookingID string, message string) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelBookingCommand(principal, bookingID)
	if err != nil {
		return s.fail(ctx, err)
	}

	err = s.handlers.CancelBooking.Handle(ctx.Request().Context(), cmd)
	s.observer.ObserveBookingOperation("cancel", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithBooking(ctx, principal, bookingID, http.StatusOK, message)
}

// UpdateBookingStatus handles PUT /api/officer/bookings/{bookingId}/status.
func (s *Server) UpdateBookingStatus(
	ctx echo.Context,
	bookingID string,
	params servers.UpdateBookingStatusParams,
) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := booking.ParseStatus(string(params.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateBookingStatusCommand(bookingID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	err = s.handlers.UpdateBookingStatus.Handle(ctx.Request().Context(), cmd)
	s.observer.ObserveBookingOperation("update_status", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithBooking(ctx, principal, bookingID, http.StatusOK, msgStatusUpdated)
}

// UpdateBookingSchedule handles PUT /api/officer/bookings/{bookingId}/schedule.
func (s *Server) UpdateBookingSchedule(
	ctx echo.Context,
	bookingID string,
	params servers.UpdateBookingScheduleParams,
) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateBookingScheduleCommand(bookingID, params.PickupTime, params.DropoffTime)
	if err != nil {
		return s.fail(ctx, err)
	}

	err = s.handlers.UpdateBookingSchedule.Handle(ctx.Request().Context(), cmd)
	s.observer.ObserveBookingOperation("update_schedule", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithBooking(ctx, principal, bookingID, http.StatusOK, msgScheduleUpdated)
}

// ReviseBookingParcel handles PUT /api/officer/bookings/{bookingId}/parcel.
func (s *Server) ReviseBookingParcel(ctx echo.Context, bookingID string) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req servers.ParcelRevision
	if err = ctx.Bind(&req); err != nil {
		return s.invalidBody(ctx)
	}

	parcel, err := newParcel(req.ParcelWeightInGram, req.ParcelContentsDescription,
		req.ParcelDeliveryType, req.ParcelPackingPreference)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReviseBookingParcelCommand(bookingID, parcel)
	if err != nil {
		return s.fail(ctx, err)
	}

	err = s.handlers.ReviseBookingParcel.Handle(ctx.Request().Context(), cmd)
	s.observer.ObserveBookingOperation("revise_parcel", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithBooking(ctx, principal, bookingID, http.StatusOK, msgParcelRevised)
}

// RecordBookingPayment handles PUT /api/officer/bookings/{bookingId}/payment.
func (s *Server) RecordBookingPayment(ctx echo.Context, bookingID string) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req servers.PaymentRecord
	if err = ctx.Bind(&req); err != nil {
		return s.invalidBody(ctx)
	}

	cmd, err := commands.NewRecordPaymentCommand(bookingID, req.PaidAt)
	if err != nil {
		return s.fail(ctx, err)
	}

	err = s.handlers.RecordPayment.Handle(ctx.Request().Context(), cmd)
	s.observer.ObserveBookingOperation("record_payment", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithBooking(ctx, principal, bookingID, http.StatusOK, msgPaymentRecorded)
}

// CalculateCost handles POST /api/common/calculate-cost.
func (s *Server) CalculateCost(ctx echo.Context, params servers.CalculateCostParams) error {
	delivery, deliveryErr := pricing.ParseDeliveryType(string(params.DeliveryType))
	packing, packingErr := pricing.ParsePackingPreference(string(params.PackingPreference))
	if err := errors.Join(deliveryErr, packingErr); err != nil {
		return s.fail(ctx, err)
	}

	asOfficer := params.IsOfficerBooking != nil && *params.IsOfficerBooking
	query, err := queries.NewQuoteCostQuery(params.Weight, delivery, packing, asOfficer)
	if err != nil {
		return s.fail(ctx, err)
	}

	quote, err := s.handlers.QuoteCost.Handle(ctx.Request().Context(), query)
	s.observer.ObserveBookingOperation("quote", err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respond(ctx, http.StatusOK, msgCostCalculated, toCostQuote(quote))
}

// respondWithBooking reads the booking back through the caller's scope so the
// response always carries the stored state. The read-back is part of the write
// and is not observed as a separate operation.
func (s *Server) respondWithBooking(
	ctx echo.Context,
	principal kernel.Principal,
	bookingID string,
	status int,
	message string,
) error {
	view, err := s.readBooking(ctx, principal, bookingID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respond(ctx, status, message, toBooking(view))
}

func (s *Server) readBooking(ctx echo.Context, principal kernel.Principal, bookingID string) (queries.BookingView, error) {
	query, err := queries.NewGetBookingQuery(principal, bookingID)
	if err != nil {
		return queries.BookingView{}, err
	}
	return s.handlers.GetBooking.Handle(ctx.Request().Context(), query)
}

func (s *Server) respond(ctx echo.Context, status int, message string, data any) error {
	return ctx.JSON(status, servers.ApiResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func (s *Server) invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.ApiResponse{
		Success: false,
		Message: "Invalid request body",
	})
}

func (s *Server) fail(ctx echo.Context, err error) error {
	return writeError(ctx, s.logger, err)
}

type noopObserver struct{}

func (noopObserver) ObserveBookingOperation(string, error) {}
