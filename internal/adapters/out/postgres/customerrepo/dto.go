// Package customerrepo reads and writes customer accounts in the users table.
// Officers are stored in the same table, distinguished by role.
package customerrepo

import (
	"parcel/internal/core/domain/model/customer"
	"parcel/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  string    `gorm:"size:64;not null;uniqueIndex"`
	Name        string    `gorm:"not null"`
	Email       string
	CountryCode string `gorm:"size:8"`
	Mobile      string `gorm:"size:16"`
	Address     string
	Role        string `gorm:"size:16;not null"`
}

func (CustomerDTO) TableName() string {
	return "users"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.Key().Bytes(),
		CustomerID:  c.CustomerID(),
		Name:        c.Name(),
		Email:       c.Email(),
		CountryCode: c.CountryCode(),
		Mobile:      c.Mobile(),
		Address:     c.Address(),
		Role:        c.Role().String(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	key, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	role, err := kernel.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(key, dto.CustomerID, dto.Name, dto.Email, dto.CountryCode, dto.Mobile, dto.Address, role)
}
