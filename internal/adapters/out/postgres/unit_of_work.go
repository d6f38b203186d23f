// Package postgres provides the GORM-based Unit of Work over the booking,
// customer and outbox repositories, plus the schema migration.
//
// A unit of work spans one booking transaction. Repositories handed out by it
// run inside the transaction once Begin was called, otherwise on the plain
// connection pool (queries use them that way).
//
// Key Features:
//   - One transaction shared by the booking, customer and outbox repositories
//   - Tracking of every booking written through the booking repository
//   - Transactional outbox: on Commit the events recorded by tracked bookings
//     are written as outbox rows before the transaction commits
//   - Rollback of the whole transaction when the outbox write fails
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	b, err := uow.BookingRepository().GetByBookingIDForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err = b.Cancel(time.Now()); err != nil {
//	    return err
//	}
//	if err = uow.BookingRepository().Update(ctx, b); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// The deferred Rollback fails harmlessly after a successful Commit, since no
// transaction is open any more.
//
// Outbox:
//
// Events are pulled from each tracked booking in the order the bookings were
// written and become one OutboxMessage each (see events.go). The relay job
// publishes them later; a committed change and its events are never separated.
//
// Concurrency Considerations:
//   - A UnitOfWork is not safe for concurrent use; every request or job run
//     creates its own through the factory
//   - Read-modify-write paths lock the booking row (SELECT ... FOR UPDATE), so
//     concurrent updates of one booking serialize and the last writer wins
//   - The relay claims outbox rows with SKIP LOCKED, so relays never publish
//     the same batch twice concurrently
package postgres

import (
	"context"

	"parcel/internal/adapters/out/postgres/bookingrepo"
	"parcel/internal/adapters/out/postgres/customerrepo"
	"parcel/internal/adapters/out/postgres/outboxrepo"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work. Instances are not safe for concurrent use;
// each request or job run takes its own.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the pending events of tracked aggregates to the outbox, then
// commits. If the outbox write fails the transaction is rolled back.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	messages, err := outboxMessages(uow.trackedAggregates)
	if err == nil {
		err = outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, messages...)
	}
	if err != nil {
		_ = uow.tx.Rollback().Error
		uow.reset()
		return err
	}

	err = uow.tx.Commit().Error
	uow.reset()
	return err
}

// Rollback discards the transaction and every tracked aggregate.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.reset()
	return err
}

func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	return bookingrepo.NewGormBookingRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// Called by repositories on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) reset() {
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
}

// Migrate creates or updates the tables of every repository.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&bookingrepo.BookingDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
}
