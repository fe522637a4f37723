// Package ports defines repository interfaces for the order tracking domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always loaded together with their items.
type OrderRepository interface {
	// Add inserts the order and all of its items, then assigns the generated
	// identities to the aggregate. Unknown customer or product references fail
	// with a NotFound error.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate is Get that also locks the order row until the surrounding
	// transaction ends, so concurrent status changes are serialized.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)

	// ListItems returns the items of an order in insertion order. An order
	// without items (or a missing order) yields an empty slice.
	ListItems(ctx context.Context, orderID kernel.ID) ([]*order.Item, error)

	// UpdateStatus persists the status and updated_at of an existing order.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order; its items are removed with it.
	Delete(ctx context.Context, id kernel.ID) error

	// ListPendingCreatedBefore returns the ids of pending orders older than cutoff,
	// oldest first, at most limit of them.
	ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]kernel.ID, error)
}
