package ports

import (
	"context"

	"ordertracking/internal/core/domain/model/customer"
	"ordertracking/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add inserts a customer and assigns its generated id.
	Add(ctx context.Context, c *customer.Customer) error

	// AddIfAbsent inserts the customer unless one with the same email exists.
	// Reports whether a row was inserted.
	AddIfAbsent(ctx context.Context, c *customer.Customer) (bool, error)

	// Get retrieves a customer by id.
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)
}
