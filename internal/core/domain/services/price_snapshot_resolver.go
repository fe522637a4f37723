package services

import (
	"context"
	"errors"
	"fmt"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/domain/model/product"
)

// ErrNoLines is returned when there is nothing to resolve.
var ErrNoLines = errors.New("no order lines to resolve")

// ProductSource loads products for price snapshots. Implementations bound to a
// transaction are expected to lock the returned rows against concurrent price
// changes until the transaction ends.
type ProductSource interface {
	GetForSnapshot(ctx context.Context, id kernel.ID) (*product.Product, error)
}

// Line is a requested quantity of a product, before its price is known.
type Line struct {
	ProductID kernel.ID
	Quantity  int
}

// PriceSnapshotResolver turns requested lines into order items carrying the
// product price as it is at resolution time.
//
// A resolver is bound to one ProductSource and is meant to live for a single
// order creation: repeated lines for the same product resolve to the same
// snapshot and hit the source once.
//
// Example usage:
//
//	resolver := services.NewPriceSnapshotResolver(uow.ProductRepository())
//	items, err := resolver.ResolveItems(ctx, lines)
//	if err != nil {
//	    // errs.ObjectNotFoundError when a product does not exist
//	    return err
//	}
//	o, err := order.NewOrder(customerID, items, time.Now())
type PriceSnapshotResolver struct {
	source    ProductSource
	snapshots map[int64]kernel.Money
}

// NewPriceSnapshotResolver creates a resolver reading from source.
func NewPriceSnapshotResolver(source ProductSource) *PriceSnapshotResolver {
	return &PriceSnapshotResolver{
		source:    source,
		snapshots: make(map[int64]kernel.Money),
	}
}

// Resolve returns the current price of productID. A missing product surfaces the
// source's not found error unchanged.
func (r *PriceSnapshotResolver) Resolve(ctx context.Context, productID kernel.ID) (kernel.Money, error) {
	if price, ok := r.snapshots[productID.Int64()]; ok {
		return price, nil
	}

	p, err := r.source.GetForSnapshot(ctx, productID)
	if err != nil {
		return kernel.Money{}, err
	}

	r.snapshots[productID.Int64()] = p.Price()
	return p.Price(), nil
}

// ResolveItems resolves every line in order and builds the corresponding items.
// The first failing line aborts resolution.
func (r *PriceSnapshotResolver) ResolveItems(ctx context.Context, lines []Line) ([]*order.Item, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	items := make([]*order.Item, 0, len(lines))
	for idx, line := range lines {
		price, err := r.Resolve(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", idx+1, err)
		}

		item, err := order.NewItem(line.ProductID, line.Quantity, price)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", idx+1, err)
		}
		items = append(items, item)
	}

	return items, nil
}
