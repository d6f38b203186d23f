package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	postgres_adapter "parcel/internal/adapters/out/postgres"
	"parcel/internal/adapters/out/postgres/pgtest"
	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite checks transaction handling and the outbox
// write on commit against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE bookings, users, outbox_messages").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func newBooking(t *testing.T) *booking.Booking {
	t.Helper()
	receiver, err := booking.NewReceiver("Asha Rao", "12 Park Street", "560001", "9876543210")
	if err != nil {
		t.Fatal(err)
	}
	parcel, err := booking.NewParcel(500, "books", pricing.DeliveryStandard, pricing.PackingBasic)
	if err != nil {
		t.Fatal(err)
	}
	b, err := booking.NewBooking(kernel.NewUUID(), booking.NewID(), "C1", receiver, parcel,
		booking.Schedule{}, true, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func (suite *UnitOfWorkIntegrationTestSuite) unpublished() []ports.OutboxMessage {
	messages, err := suite.factory.Create().OutboxRepository().GetUnpublished(context.Background(), 100)
	suite.Require().NoError(err)
	return messages
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WritesBookingAndEvents() {
	ctx := context.Background()
	b := newBooking(suite.T())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BookingRepository().Add(ctx, b))
	suite.Require().NoError(uow.Commit(ctx))

	found, err := suite.factory.Create().BookingRepository().GetByBookingID(ctx, b.ID())
	suite.Require().NoError(err)
	suite.Equal("157.50", pricing.FormatAmount(found.ServiceCost()))

	messages := suite.unpublished()
	suite.Require().Len(messages, 1)
	suite.Equal(string(booking.EventCreated), messages[0].EventType)
	suite.Equal(b.ID().String(), messages[0].AggregateID)

	var payload postgres_adapter.BookingEventPayload
	suite.Require().NoError(json.Unmarshal(messages[0].Payload, &payload))
	suite.Equal("NEW", payload.Status)
	suite.Equal("157.50", payload.ServiceCost)
	suite.Equal("C1", payload.OwnerID)
	suite.Empty(payload.PreviousStatus)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_UpdateEventsInOrder() {
	ctx := context.Background()
	b := newBooking(suite.T())
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BookingRepository().Add(ctx, b))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	locked, err := uow.BookingRepository().GetByBookingIDForUpdate(ctx, b.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.ChangeStatus(booking.StatusScheduled, time.Now()))
	suite.Require().NoError(locked.Cancel(time.Now()))
	suite.Require().NoError(uow.BookingRepository().Update(ctx, locked))
	suite.Require().NoError(uow.Commit(ctx))

	messages := suite.unpublished()
	suite.Require().Len(messages, 3)
	suite.Equal(string(booking.EventStatusChanged), messages[1].EventType)
	suite.Equal(string(booking.EventCancelled), messages[2].EventType)

	var payload postgres_adapter.BookingEventPayload
	suite.Require().NoError(json.Unmarshal(messages[2].Payload, &payload))
	suite.Equal("CANCELLED", payload.Status)
	suite.Equal("SCHEDULED", payload.PreviousStatus)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsBookingAndEvents() {
	ctx := context.Background()
	b := newBooking(suite.T())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BookingRepository().Add(ctx, b))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().BookingRepository().GetByBookingID(ctx, b.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Empty(suite.unpublished())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesShareTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	b := newBooking(suite.T())
	suite.Require().NoError(uow.BookingRepository().Add(ctx, b))

	// visible inside the transaction, invisible outside until commit
	_, err := uow.BookingRepository().GetByBookingID(ctx, b.ID())
	suite.Require().NoError(err)
	_, err = suite.factory.Create().BookingRepository().GetByBookingID(ctx, b.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.Commit(ctx))
	_, err = suite.factory.Create().BookingRepository().GetByBookingID(ctx, b.ID())
	suite.Require().NoError(err)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
