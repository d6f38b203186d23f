package customerrepo

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/customer"
	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add registers an account. Used by seeding and tests; sign-up lives elsewhere.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an account by customer identity.
func (r *GormCustomerRepository) Get(ctx context.Context, customerID string) (*customer.Customer, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "customer_id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", customerID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany retrieves the accounts that exist among customerIDs.
func (r *GormCustomerRepository) GetMany(ctx context.Context, customerIDs []string) (map[string]*customer.Customer, error) {
	result := make(map[string]*customer.Customer, len(customerIDs))
	if len(customerIDs) == 0 {
		return result, nil
	}

	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "customer_id IN ?", customerIDs).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result[c.CustomerID()] = c
	}

	return result, nil
}
