package commands_test

import (
	"testing"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderStatusCommand(t *testing.T) {
	cmd, err := commands.NewTransitionOrderStatusCommand(mustID(t, 5), order.Confirmed)
	require.NoError(t, err)
	assert.Equal(t, mustID(t, 5), cmd.OrderID())
	assert.Equal(t, order.Confirmed, cmd.Target())

	_, err = commands.NewTransitionOrderStatusCommand(kernel.ID{}, order.Unknown)
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestTransitionOrderStatusCommandHandler_Handle_LegalTransitions(t *testing.T) {
	testCases := []struct {
		from order.Status
		to   order.Status
	}{
		{order.Pending, order.Confirmed},
		{order.Confirmed, order.Shipped},
		{order.Pending, order.Cancelled},
		{order.Confirmed, order.Cancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewTransitionOrderStatusCommand(mustID(t, 5), tc.to)
			require.NoError(t, err)

			o := mustOrderInStatus(t, 5, tc.from)
			orders := new(MockOrderRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(orders).Once(),
				orders.On("GetForUpdate", ctx, mustID(t, 5)).Return(o, nil).Once(),
				orders.On("UpdateStatus", ctx, o).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewTransitionOrderStatusCommandHandler(
				factory, order.NewTransitionTable(order.DefaultCancellationPolicy()), nil,
			)
			result, err := h.Handle(ctx, cmd)
			require.NoError(t, err)
			assert.Equal(t, tc.from, result.From)
			assert.Equal(t, tc.to, result.To)
			assert.Equal(t, tc.to, o.Status())
			orders.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestTransitionOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	testCases := []struct {
		name   string
		from   order.Status
		to     order.Status
		policy order.CancellationPolicy
	}{
		{"shipped is terminal", order.Shipped, order.Cancelled, order.DefaultCancellationPolicy()},
		{"cancelled is terminal", order.Cancelled, order.Confirmed, order.DefaultCancellationPolicy()},
		{"no skipping confirmation", order.Pending, order.Shipped, order.DefaultCancellationPolicy()},
		{"nothing re-enters pending", order.Confirmed, order.Pending, order.DefaultCancellationPolicy()},
		{"strict policy", order.Confirmed, order.Cancelled, order.CancellationPolicy{AllowAfterConfirm: false}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewTransitionOrderStatusCommand(mustID(t, 5), tc.to)
			require.NoError(t, err)

			o := mustOrderInStatus(t, 5, tc.from)
			orders := new(MockOrderRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(orders).Once(),
				orders.On("GetForUpdate", ctx, mustID(t, 5)).Return(o, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewTransitionOrderStatusCommandHandler(factory, order.NewTransitionTable(tc.policy), nil)
			_, err = h.Handle(ctx, cmd)
			require.Error(t, err)

			var illegal *errs.IllegalTransitionError
			require.ErrorAs(t, err, &illegal)
			assert.Equal(t, tc.from.String(), illegal.From)
			assert.Equal(t, tc.to.String(), illegal.To)
			assert.Equal(t, tc.from, o.Status())

			orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", ctx)
			uow.AssertExpectations(t)
		})
	}
}

func TestTransitionOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTransitionOrderStatusCommand(mustID(t, 404), order.Confirmed)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, mustID(t, 404)).
			Return(nil, errs.NewObjectNotFoundError("order", int64(404))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderStatusCommandHandler(
		factory, order.NewTransitionTable(order.DefaultCancellationPolicy()), nil,
	)
	_, err = h.Handle(ctx, cmd)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	uow.AssertExpectations(t)
}

func TestTransitionOrderStatusCommandHandler_Handle_LockTimeout(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTransitionOrderStatusCommand(mustID(t, 5), order.Confirmed)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, mustID(t, 5)).
			Return(nil, errs.NewStoreBusyError("lock order 5", nil)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderStatusCommandHandler(
		factory, order.NewTransitionTable(order.DefaultCancellationPolicy()), nil,
	)
	_, err = h.Handle(ctx, cmd)
	assert.True(t, errs.IsRetryable(err))
	uow.AssertExpectations(t)
}
