package commands

import (
	"context"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/domain/services"
)

// CreateOrderCommandHandler creates an order and its items in one transaction.
//
// The handler checks the customer, captures the current price of every product
// through a PriceSnapshotResolver, inserts the order with its items and commits.
// Any failure rolls the whole transaction back, so either the order and all of
// its items exist afterwards or none of them do.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, recorder)
//	orderID, err := handler.Handle(ctx, cmd)
//	if errs.KindOf(err) == errs.KindNotFound {
//	    // customer or one of the products does not exist
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	recorder   OrderEventRecorder
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// recorder may be nil.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, recorder OrderEventRecorder) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorderOrNop(recorder),
	}
}

// Handle places the order and returns its id.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return kernel.ID{}, err
	}

	lines := make([]services.Line, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		lines = append(lines, services.Line{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	resolver := services.NewPriceSnapshotResolver(uow.ProductRepository())
	items, err := resolver.ResolveItems(ctx, lines)
	if err != nil {
		return kernel.ID{}, err
	}

	newOrder, err := order.NewOrder(cmd.CustomerID(), items, time.Now())
	if err != nil {
		return kernel.ID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	h.recorder.OrderCreated(newOrder.ID(), newOrder.Total())
	return newOrder.ID(), nil
}
