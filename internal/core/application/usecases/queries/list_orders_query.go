package queries

import (
	"errors"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"
	"ordertracking/internal/pkg/guard"
)

const (
	DefaultListOrdersLimit = 50
	MaxListOrdersLimit     = 500
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the most recent orders, newest first.
// A zero limit means DefaultListOrdersLimit; order.Unknown as status means any status.
type ListOrdersQuery struct {
	limit  int
	status order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(limit int, status order.Status) (ListOrdersQuery, error) {
	if limit == 0 {
		limit = DefaultListOrdersLimit
	}
	if limit < 0 || limit > MaxListOrdersLimit {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListOrdersLimit)
	}
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{limit: limit, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Status returns the status filter, order.Unknown when there is none.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// OrderSummary is one row of the order list.
type OrderSummary struct {
	ID           kernel.ID
	CustomerID   kernel.ID
	CustomerName string
	Status       order.Status
	Total        kernel.Money
	ItemCount    int
	CreatedAt    time.Time
}
