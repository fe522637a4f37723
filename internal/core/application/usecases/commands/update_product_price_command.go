package commands

import (
	"errors"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/errs"
	"ordertracking/internal/pkg/guard"
)

var ErrUpdateProductPriceCommandIsNotConstructed = errors.New(
	"UpdateProductPriceCommand must be created via NewUpdateProductPriceCommand constructor",
)

// UpdateProductPriceCommand changes the catalogue price of a product.
// Existing orders keep the price they were created with.
type UpdateProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID kernel.ID
	price     kernel.Money

	guard guard.ConstructorGuard
}

func NewUpdateProductPriceCommand(productID kernel.ID, price kernel.Money) (UpdateProductPriceCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductPriceCommand{}, errs.NewValueIsInvalidErrorWithCause("product id", err)
	}

	return UpdateProductPriceCommand{
		productID: productID,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductPriceCommandIsNotConstructed)
}

func (c UpdateProductPriceCommand) ProductID() kernel.ID {
	return c.productID
}

func (c UpdateProductPriceCommand) Price() kernel.Money {
	return c.price
}
