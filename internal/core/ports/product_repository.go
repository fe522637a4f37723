package ports

import (
	"context"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalogue products.
type ProductRepository interface {
	// Add inserts a product and assigns its generated id.
	// A duplicate SKU fails with a validation error.
	Add(ctx context.Context, p *product.Product) error

	// AddIfAbsent inserts the product unless one with the same SKU exists.
	// Reports whether a row was inserted.
	AddIfAbsent(ctx context.Context, p *product.Product) (bool, error)

	// Get retrieves a product by id.
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)

	// GetForSnapshot retrieves a product and holds a shared lock on it until the
	// surrounding transaction ends, so its price cannot change meanwhile.
	GetForSnapshot(ctx context.Context, id kernel.ID) (*product.Product, error)

	// UpdatePrice persists the current price of an existing product.
	UpdatePrice(ctx context.Context, p *product.Product) error

	// Delete removes a product. Fails with errs.ReferentialIntegrityError while
	// any order item references it.
	Delete(ctx context.Context, id kernel.ID) error
}
