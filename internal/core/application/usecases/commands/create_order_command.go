package commands

import (
	"errors"
	"fmt"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"
	"ordertracking/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is a requested quantity of one product.
type OrderLine struct {
	ProductID kernel.ID
	Quantity  int
}

// CreateOrderCommand represents a request to place an order for a customer.
// Lines may repeat a product; each line becomes its own order item.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, []OrderLine{
//	    {ProductID: widgetID, Quantity: 2},
//	    {ProductID: gadgetID, Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, nil)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	lines      []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates ids, that there is at least one line and
// that every quantity is positive.
func NewCreateOrderCommand(customerID kernel.ID, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("lines", errors.New("an order needs at least one item"))
	}

	var lineErrs []error
	for idx, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w", idx+1,
				errs.NewValueIsInvalidErrorWithCause("product id", err)))
		}
		if line.Quantity <= 0 || line.Quantity > order.MaxQuantity {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w", idx+1,
				errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, order.MaxQuantity)))
		}
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
