package ports

import (
	"context"

	"parcel/internal/core/domain/model/customer"
)

// CustomerRepository looks up registered accounts by their customer identity.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get returns errs.ObjectNotFoundError when no account has customerID.
	Get(ctx context.Context, customerID string) (*customer.Customer, error)

	// GetMany returns the accounts found, keyed by customer identity. Missing
	// identities are simply absent from the map.
	GetMany(ctx context.Context, customerIDs []string) (map[string]*customer.Customer, error)
}
