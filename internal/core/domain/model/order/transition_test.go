package order_test

import (
	"testing"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable_DefaultPolicy(t *testing.T) {
	table := order.NewTransitionTable(order.DefaultCancellationPolicy())

	legal := map[order.Status][]order.Status{
		order.Pending:   {order.Confirmed, order.Cancelled},
		order.Confirmed: {order.Shipped, order.Cancelled},
		order.Shipped:   {},
		order.Cancelled: {},
	}

	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			expected := false
			for _, target := range legal[from] {
				if target == to {
					expected = true
				}
			}

			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				assert.Equal(t, expected, table.Allows(from, to))

				err := table.Check(from, to)
				if expected {
					require.NoError(t, err)
					return
				}
				require.Error(t, err)
				assert.Equal(t, errs.KindIllegalTransition, errs.KindOf(err))
			})
		}
	}
}

func TestTransitionTable_StrictPolicy(t *testing.T) {
	table := order.NewTransitionTable(order.CancellationPolicy{AllowAfterConfirm: false})

	assert.True(t, table.Allows(order.Pending, order.Cancelled))
	assert.True(t, table.Allows(order.Confirmed, order.Shipped))
	assert.False(t, table.Allows(order.Confirmed, order.Cancelled))
	assert.Equal(t, []order.Status{order.Shipped}, table.Targets(order.Confirmed))
}

func TestTransitionTable_NothingReentersPending(t *testing.T) {
	table := order.NewTransitionTable(order.DefaultCancellationPolicy())

	for _, from := range order.AllStatuses() {
		assert.False(t, table.Allows(from, order.Pending), "from %s", from)
	}
}

func TestTransitionTable_Check_InvalidTarget(t *testing.T) {
	table := order.NewTransitionTable(order.DefaultCancellationPolicy())

	err := table.Check(order.Pending, order.Unknown)

	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestTransitionTable_Targets_ReturnsCopy(t *testing.T) {
	table := order.NewTransitionTable(order.DefaultCancellationPolicy())

	targets := table.Targets(order.Pending)
	targets[0] = order.Shipped

	assert.False(t, table.Allows(order.Pending, order.Shipped))
}
