package http_test

import (
	"context"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/mock"
)

type MockCreateBookingHandler struct{ mock.Mock }

func (m *MockCreateBookingHandler) Handle(ctx context.Context, cmd commands.CreateBookingCommand) (booking.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(booking.ID), args.Error(1)
}

type MockCancelBookingHandler struct{ mock.Mock }

func (m *MockCancelBookingHandler) Handle(ctx context.Context, cmd commands.CancelBookingCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUpdateBookingStatusHandler struct{ mock.Mock }

func (m *MockUpdateBookingStatusHandler) Handle(ctx context.Context, cmd commands.UpdateBookingStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUpdateBookingScheduleHandler struct{ mock.Mock }

func (m *MockUpdateBookingScheduleHandler) Handle(ctx context.Context, cmd commands.UpdateBookingScheduleCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockReviseBookingParcelHandler struct{ mock.Mock }

func (m *MockReviseBookingParcelHandler) Handle(ctx context.Context, cmd commands.ReviseBookingParcelCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRecordPaymentHandler struct{ mock.Mock }

func (m *MockRecordPaymentHandler) Handle(ctx context.Context, cmd commands.RecordPaymentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetBookingHandler struct{ mock.Mock }

func (m *MockGetBookingHandler) Handle(ctx context.Context, query queries.GetBookingQuery) (queries.BookingView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.BookingView), args.Error(1)
}

type MockListBookingsHandler struct{ mock.Mock }

func (m *MockListBookingsHandler) Handle(
	ctx context.Context,
	query queries.ListBookingsQuery,
) (queries.ListBookingsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListBookingsQueryResponse), args.Error(1)
}

type MockQuoteCostHandler struct{ mock.Mock }

func (m *MockQuoteCostHandler) Handle(ctx context.Context, query queries.QuoteCostQuery) (pricing.Quote, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(pricing.Quote), args.Error(1)
}
