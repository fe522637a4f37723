// Package customerrepo persists customers with GORM.
package customerrepo

import (
	"fmt"
	"time"

	"ordertracking/internal/core/domain/model/customer"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/errs"
)

// CustomerDTO maps the customers table. Email is NULL when the customer has none,
// which keeps the unique constraint from colliding on empty strings.
type CustomerDTO struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"not null"`
	Email     *string `gorm:"uniqueIndex"`
	Phone     *string
	CreatedAt time.Time
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	var email *string
	if c.Email() != "" {
		e := c.Email()
		email = &e
	}

	var phone *string
	if c.Phone() != "" {
		p := c.Phone()
		phone = &p
	}

	return CustomerDTO{
		ID:        c.ID().Int64(),
		Name:      c.Name(),
		Email:     email,
		Phone:     phone,
		CreatedAt: c.CreatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, errs.NewStoreCorruptionError(fmt.Sprintf("load customer %d", dto.ID), err)
	}

	email := ""
	if dto.Email != nil {
		email = *dto.Email
	}

	phone := ""
	if dto.Phone != nil {
		phone = *dto.Phone
	}

	c, err := customer.RestoreCustomer(id, dto.Name, email, phone, dto.CreatedAt)
	if err != nil {
		return nil, errs.NewStoreCorruptionError(fmt.Sprintf("load customer %d", dto.ID), err)
	}
	return c, nil
}
