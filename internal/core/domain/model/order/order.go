package order

import (
	"errors"
	"fmt"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxTotal is the largest order total the store holds, NUMERIC(14,2).
var MaxTotal = decimal.RequireFromString("999999999999.99")

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyPersisted is returned when identities are assigned twice.
	ErrOrderAlreadyPersisted = errors.New("order already has an identity")
)

// Order is the aggregate root of the order tracking system. It owns its items and
// keeps the total consistent with them.
//
// Order follows these invariants:
//   - Belongs to exactly one customer
//   - Has at least one item
//   - Total equals the sum of item subtotals and does not exceed MaxTotal
//   - Status changes only along a TransitionTable
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is assigned by the store, zero until persisted
	id kernel.ID

	customerID kernel.ID

	status Status

	items []*Item

	// total is derived from items when the order is created and stored alongside them
	total kernel.Money

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a pending order for customerID. The total is computed from
// items, whose unit prices must already be resolved.
//
// Example:
//
//	item, _ := order.NewItem(productID, 2, kernel.MustMoney("9.99"))
//	o, err := order.NewOrder(customerID, []*order.Item{item}, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(o.Total()) // 19.98
func NewOrder(customerID kernel.ID, items []*Item, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	total := sumSubtotals(o.items)
	if total.Decimal().GreaterThan(MaxTotal) {
		return nil, errs.NewValueIsOutOfRangeErrorWithCause(
			"total", total.String(), "0.00", MaxTotal.StringFixed(kernel.MoneyScale),
			errors.New("order total is too large"),
		)
	}

	o.total = total
	return o, nil
}

// RestoreOrder rebuilds an order loaded from the store. A stored total that does not
// match the stored items means the data was damaged outside this application and is
// reported as StoreCorruption.
func RestoreOrder(
	id, customerID kernel.ID,
	status Status,
	items []*Item,
	total kernel.Money,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, errs.NewStoreCorruptionError(fmt.Sprintf("restore order %s", id), err)
	}

	o := &Order{
		id:            id,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, errs.NewStoreCorruptionError(fmt.Sprintf("restore order %s", id), err)
	}

	if expected := sumSubtotals(o.items); !expected.IsEqual(total) {
		return nil, errs.NewStoreCorruptionError(
			fmt.Sprintf("restore order %s", id),
			fmt.Errorf("stored total %s does not match items total %s", total, expected),
		)
	}

	o.total = total
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two persisted orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.id.IsZero() && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order lines in insertion order.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AssignIdentity records the identities the store generated for the order and its
// items, in item order. It is called once by the repository after insert.
func (o *Order) AssignIdentity(id kernel.ID, itemIDs []kernel.ID) error {
	if !o.id.IsZero() {
		return ErrOrderAlreadyPersisted
	}
	if err := id.Validate(); err != nil {
		return err
	}
	if len(itemIDs) != len(o.items) {
		return errs.NewValueIsInvalidErrorWithCause(
			"item ids",
			fmt.Errorf("got %d ids for %d items", len(itemIDs), len(o.items)),
		)
	}

	for i, itemID := range itemIDs {
		if err := itemID.Validate(); err != nil {
			return err
		}
		o.items[i].id = itemID
	}

	o.id = id
	return nil
}

// TransitionTo moves the order to target if table allows it. On error the order
// is left unchanged.
//
// Example:
//
//	table := order.NewTransitionTable(order.DefaultCancellationPolicy())
//	if err := o.TransitionTo(order.Shipped, table, time.Now()); err != nil {
//	    // errs.IllegalTransitionError when the order is not confirmed
//	}
func (o *Order) TransitionTo(target Status, table TransitionTable, now time.Time) error {
	if err := table.Check(o.status, target); err != nil {
		return err
	}

	o.status = target
	o.updatedAt = now.UTC()
	return nil
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", errors.New("an order needs at least one item"))
	}

	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}

func sumSubtotals(items []*Item) kernel.Money {
	var total kernel.Money
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
