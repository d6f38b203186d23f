package queries

import (
	"context"

	"parcel/internal/core/domain/services"
	"parcel/internal/core/ports"
)

// DefaultPageSize is used when the handler is built with a non-positive size.
const DefaultPageSize = 10

// ListBookingsQueryHandler pages through bookings inside the principal's
// listing scope. The page size is fixed per handler.
type ListBookingsQueryHandler struct {
	bookings  BookingReader
	customers CustomerReader
	resolver  services.ScopeResolver
	pageSize  int
}

func NewListBookingsQueryHandler(bookings BookingReader, customers CustomerReader, pageSize int) ListBookingsQueryHandler {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return ListBookingsQueryHandler{
		bookings:  bookings,
		customers: customers,
		resolver:  services.NewScopeResolver(),
		pageSize:  pageSize,
	}
}

func (h ListBookingsQueryHandler) Handle(
	ctx context.Context,
	query ListBookingsQuery,
) (ListBookingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListBookingsQueryResponse{}, err
	}

	scope, err := h.resolver.Listing(query.Principal())
	if err != nil {
		return ListBookingsQueryResponse{}, err
	}

	filters := query.Filters()
	filter := ports.BookingFilter{
		OwnerID:           scope.OwnerID,
		BookingIDContains: filters.BookingID,
		Status:            filters.Status,
		CreatedFrom:       filters.CreatedFrom,
		CreatedTo:         filters.CreatedTo,
	}
	if scope.IsUnrestricted() {
		filter.OwnerIDContains = filters.CustomerID
	}

	page := ports.PageRequest{Index: query.Page(), Size: h.pageSize}
	result, err := h.bookings.List(ctx, filter, page)
	if err != nil {
		return ListBookingsQueryResponse{}, err
	}

	response := ListBookingsQueryResponse{
		Items:         make([]BookingView, 0, len(result.Items)),
		Page:          page.Index,
		Size:          page.Size,
		TotalElements: result.Total,
		TotalPages:    int((result.Total + int64(page.Size) - 1) / int64(page.Size)),
	}
	if len(result.Items) == 0 {
		return response, nil
	}

	ownerIDs := make([]string, 0, len(result.Items))
	seen := make(map[string]struct{}, len(result.Items))
	for _, b := range result.Items {
		if _, ok := seen[b.OwnerID()]; !ok {
			seen[b.OwnerID()] = struct{}{}
			ownerIDs = append(ownerIDs, b.OwnerID())
		}
	}

	owners, err := h.customers.GetMany(ctx, ownerIDs)
	if err != nil {
		return ListBookingsQueryResponse{}, err
	}
	for _, b := range result.Items {
		response.Items = append(response.Items, newBookingView(b, owners[b.OwnerID()]))
	}

	return response, nil
}
