package commands

import (
	"errors"
	"strings"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/errs"
	"ordertracking/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product to the catalogue.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name  string
	sku   string
	price kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(name, sku string, price kernel.Money) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setSKU(sku),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) SKU() string {
	return c.sku
}

func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

func (c *CreateProductCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	c.sku = sku
	return nil
}
