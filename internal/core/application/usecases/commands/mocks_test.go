package commands_test

import (
	"context"
	"testing"
	"time"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/customer"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, key kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByBookingID(ctx context.Context, id booking.ID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByBookingIDForUpdate(ctx context.Context, id booking.ID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(
	ctx context.Context,
	filter ports.BookingFilter,
	page ports.PageRequest,
) (ports.BookingPage, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(ports.BookingPage), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, customerID string) (*customer.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetMany(ctx context.Context, ids []string) (map[string]*customer.Customer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*customer.Customer), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	args := m.Called(ctx, ids, at)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

func testPrincipal(t *testing.T, identity string, role kernel.Role) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(identity, role)
	require.NoError(t, err)
	return p
}

func testReceiver(t *testing.T) booking.Receiver {
	t.Helper()
	r, err := booking.NewReceiver("Asha Rao", "12 Park Street", "560001", "9876543210")
	require.NoError(t, err)
	return r
}

func testParcel(t *testing.T) booking.Parcel {
	t.Helper()
	p, err := booking.NewParcel(500, "books", pricing.DeliveryStandard, pricing.PackingBasic)
	require.NoError(t, err)
	return p
}

func testBooking(t *testing.T, ownerID string, status booking.Status) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(kernel.NewUUID(), booking.NewID(), ownerID, testReceiver(t), testParcel(t),
		booking.Schedule{}, false, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	if status != booking.StatusNew {
		require.NoError(t, b.ChangeStatus(status, time.Now().Add(-time.Hour)))
	}
	b.PullEvents()
	return b
}

// expectMutation wires a booking unit of work that loads b for update.
func expectMutation(
	t *testing.T,
	b *booking.Booking,
) (*MockBookingUoWFactory, *MockUoW, *MockBookingRepository) {
	t.Helper()
	ctx := t.Context()
	repo := new(MockBookingRepository)
	uow := new(MockUoW)
	factory := new(MockBookingUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(repo).Once()
	repo.On("GetByBookingIDForUpdate", ctx, b.ID()).Return(b, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	return factory, uow, repo
}
