package queries

import (
	"errors"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"
	"ordertracking/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery retrieves one order with its items, customer name and line totals.
//
// Example:
//
//	query, err := NewGetOrderDetailsQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	details, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, item := range details.Items {
//	    fmt.Printf("%s x%d @ %s = %s\n", item.ProductName, item.Quantity,
//	        item.UnitPrice.Display(), item.LineTotal.Display())
//	}
type GetOrderDetailsQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(orderID kernel.ID) (GetOrderDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return GetOrderDetailsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) OrderID() kernel.ID {
	return q.orderID
}

// GetOrderDetailsQueryResponse is the full view of an order.
type GetOrderDetailsQueryResponse struct {
	ID           kernel.ID
	CustomerID   kernel.ID
	CustomerName string
	Status       order.Status
	Total        kernel.Money
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Items        []OrderItemDetails
}

// OrderItemDetails is one order line with the price it was bought at.
type OrderItemDetails struct {
	ID          kernel.ID
	ProductID   kernel.ID
	ProductName string
	SKU         string
	Quantity    int
	UnitPrice   kernel.Money
	LineTotal   kernel.Money
}
