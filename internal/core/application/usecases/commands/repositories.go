// Package commands contains the booking operations that modify state.
// Every command follows the same pattern: a constructor-validated command
// value, a handler that opens a unit of work, applies the domain rules and
// commits, so either every field change of a mutation is visible or none is.
package commands

import (
	"context"

	"parcel/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookingRepoFactory provides access to the booking repository within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OutboxRepoFactory provides access to the outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// BookingUoW manages transactions for commands that change one existing booking.
	BookingUoW interface {
		TxManager
		BookingRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// UoW manages transactions that read customer accounts and write bookings.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   customer, err := uow.CustomerRepository().Get(ctx, "cust-1")
	//   // ... build the booking
	//   err = uow.BookingRepository().Add(ctx, b)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		BookingRepoFactory
		CustomerRepoFactory
	}

	// UoWFactory creates new unit of work instances for booking creation.
	UoWFactory interface {
		Create() UoW
	}

	// OutboxUoW manages transactions of the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
