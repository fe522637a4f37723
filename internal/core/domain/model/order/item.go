package order

import (
	"errors"
	"fmt"
	"math"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/errs"
)

// MaxQuantity is the largest quantity a single line may carry; it matches the
// integer column the quantity is stored in.
const MaxQuantity = math.MaxInt32

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order. The unit price is the product price captured at
// order creation; it is never recomputed from the current catalogue.
type Item struct {
	id            kernel.ID
	productID     kernel.ID
	quantity      int
	unitPrice     kernel.Money
	isConstructed bool
}

// NewItem creates a line for quantity units of productID at the snapshot unitPrice.
func NewItem(productID kernel.ID, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.unitPrice = unitPrice
	return item, nil
}

// RestoreItem rebuilds a persisted line.
func RestoreItem(id, productID kernel.ID, quantity int, unitPrice kernel.Money) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	item, err := NewItem(productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	item.id = id
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID is zero until the item has been persisted.
func (i *Item) ID() kernel.ID {
	return i.id
}

func (i *Item) ProductID() kernel.ID {
	return i.productID
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal is quantity times unit price.
func (i *Item) Subtotal() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

func (i *Item) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"quantity", quantity, 1, MaxQuantity,
			fmt.Errorf("%d is not a valid quantity", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
