package commands

import (
	"context"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
)

// TransitionOrderStatusResult reports the change that was committed.
type TransitionOrderStatusResult struct {
	OrderID kernel.ID
	From    order.Status
	To      order.Status
}

// TransitionOrderStatusCommandHandler applies status changes under a row lock.
//
// The order row is read with FOR UPDATE, so two concurrent transitions of the same
// order are serialized: the second one sees the status the first one committed and
// is checked against it. An illegal change returns errs.IllegalTransitionError and
// leaves the order untouched.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	table      order.TransitionTable
	recorder   OrderEventRecorder
}

// NewTransitionOrderStatusCommandHandler creates a handler that enforces table.
// recorder may be nil.
func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	table order.TransitionTable,
	recorder OrderEventRecorder,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		table:      table,
		recorder:   recorderOrNop(recorder),
	}
}

// Handle performs the transition.
func (h *TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (TransitionOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return TransitionOrderStatusResult{}, err
	}

	from := o.Status()
	if err = o.TransitionTo(cmd.Target(), h.table, time.Now()); err != nil {
		return TransitionOrderStatusResult{}, err
	}

	if err = orderRepo.UpdateStatus(ctx, o); err != nil {
		return TransitionOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionOrderStatusResult{}, err
	}

	h.recorder.OrderStatusChanged(o.ID(), from, o.Status())
	return TransitionOrderStatusResult{OrderID: o.ID(), From: from, To: o.Status()}, nil
}
