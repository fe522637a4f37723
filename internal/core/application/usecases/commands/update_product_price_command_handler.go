package commands

import (
	"context"
)

// UpdateProductPriceCommandHandler changes product prices.
//
// The write blocks while an order creation holds a shared lock on the product,
// so a price change never lands between an order's snapshot and its commit.
type UpdateProductPriceCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewUpdateProductPriceCommandHandler(uowFactory ProductUoWFactory) UpdateProductPriceCommandHandler {
	return UpdateProductPriceCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateProductPriceCommandHandler) Handle(ctx context.Context, cmd UpdateProductPriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	p.ChangePrice(cmd.Price())

	if err = productRepo.UpdatePrice(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
