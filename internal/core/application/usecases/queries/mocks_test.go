package queries_test

import (
	"context"
	"testing"
	"time"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/customer"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReader struct{ mock.Mock }

func (m *MockBookingReader) GetByBookingID(ctx context.Context, id booking.ID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingReader) List(
	ctx context.Context,
	filter ports.BookingFilter,
	page ports.PageRequest,
) (ports.BookingPage, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(ports.BookingPage), args.Error(1)
}

type MockCustomerReader struct{ mock.Mock }

func (m *MockCustomerReader) GetMany(ctx context.Context, ids []string) (map[string]*customer.Customer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*customer.Customer), args.Error(1)
}

func testPrincipal(t *testing.T, identity string, role kernel.Role) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(identity, role)
	require.NoError(t, err)
	return p
}

func testCustomer(t *testing.T, customerID string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), customerID, "Ravi Kumar", "ravi@example.com",
		"+91", "9876543210", "4 Lake Road", kernel.RoleCustomer)
	require.NoError(t, err)
	return c
}

func testBooking(t *testing.T, ownerID string, createdAt time.Time) *booking.Booking {
	t.Helper()
	receiver, err := booking.NewReceiver("Asha Rao", "12 Park Street", "560001", "9876543210")
	require.NoError(t, err)
	parcel, err := booking.NewParcel(500, "books", pricing.DeliveryStandard, pricing.PackingBasic)
	require.NoError(t, err)
	b, err := booking.NewBooking(kernel.NewUUID(), booking.NewID(), ownerID, receiver, parcel,
		booking.Schedule{}, false, createdAt)
	require.NoError(t, err)
	return b
}
