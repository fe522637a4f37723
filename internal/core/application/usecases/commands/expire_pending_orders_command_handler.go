package commands

import (
	"context"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"
)

// OrderTransitioner applies a single status change.
// Implemented by TransitionOrderStatusCommandHandler.
type OrderTransitioner interface {
	Handle(ctx context.Context, cmd TransitionOrderStatusCommand) (TransitionOrderStatusResult, error)
}

// ExpirePendingOrdersResult lists the orders cancelled by one run and how many
// candidates were left alone.
type ExpirePendingOrdersResult struct {
	Cancelled []kernel.ID
	Skipped   int
}

// ExpirePendingOrdersCommandHandler cancels stale pending orders.
//
// Candidates are listed first, then each one is cancelled in its own transaction
// through the regular transition path. Orders that were confirmed, deleted or are
// locked by someone else in the meantime are skipped; the next run picks up any
// that are still pending.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory   OrderUoWFactory
	transitioner OrderTransitioner
}

func NewExpirePendingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	transitioner OrderTransitioner,
) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory:   uowFactory,
		transitioner: transitioner,
	}
}

func (h *ExpirePendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd ExpirePendingOrdersCommand,
) (ExpirePendingOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return ExpirePendingOrdersResult{}, err
	}

	ids, err := h.listCandidates(ctx, cmd)
	if err != nil {
		return ExpirePendingOrdersResult{}, err
	}

	var result ExpirePendingOrdersResult
	for _, id := range ids {
		transition, err := NewTransitionOrderStatusCommand(id, order.Cancelled)
		if err != nil {
			return result, err
		}

		if _, err = h.transitioner.Handle(ctx, transition); err != nil {
			switch errs.KindOf(err) {
			case errs.KindIllegalTransition, errs.KindNotFound, errs.KindStoreBusy:
				if ctx.Err() != nil {
					return result, ctx.Err()
				}
				result.Skipped++
				continue
			default:
				return result, err
			}
		}

		result.Cancelled = append(result.Cancelled, id)
	}

	return result, nil
}

func (h *ExpirePendingOrdersCommandHandler) listCandidates(
	ctx context.Context,
	cmd ExpirePendingOrdersCommand,
) ([]kernel.ID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ids, err := uow.OrderRepository().ListPendingCreatedBefore(ctx, cmd.Cutoff(), cmd.Limit())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}
