package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command; instances are
// never shared between requests.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one booking transaction. Domain events raised by aggregates
// saved through its repositories land in the outbox in the same transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit flushes pending outbox messages and commits. It fails without an
	// open transaction.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. After Commit there is nothing left to
	// discard and it reports an error, which deferred callers ignore.
	Rollback(ctx context.Context) error

	BookingRepository() BookingRepository
	CustomerRepository() CustomerRepository
	OutboxRepository() OutboxRepository
}
