package order

import (
	"ordertracking/internal/pkg/errs"
)

// CancellationPolicy decides which statuses may still be cancelled.
type CancellationPolicy struct {
	// AllowAfterConfirm permits Confirmed -> Cancelled in addition to Pending -> Cancelled.
	AllowAfterConfirm bool
}

// DefaultCancellationPolicy allows cancelling until the order ships.
func DefaultCancellationPolicy() CancellationPolicy {
	return CancellationPolicy{AllowAfterConfirm: true}
}

// TransitionTable holds the legal status changes. It is built once from a
// CancellationPolicy and is safe for concurrent use since it is never mutated.
//
// Example:
//
//	table := order.NewTransitionTable(order.CancellationPolicy{AllowAfterConfirm: false})
//	table.Allows(order.Confirmed, order.Cancelled) // false
type TransitionTable struct {
	allowed map[Status][]Status
}

// NewTransitionTable builds the lifecycle table for policy.
func NewTransitionTable(policy CancellationPolicy) TransitionTable {
	confirmedTargets := []Status{Shipped}
	if policy.AllowAfterConfirm {
		confirmedTargets = append(confirmedTargets, Cancelled)
	}

	return TransitionTable{
		allowed: map[Status][]Status{
			Pending:   {Confirmed, Cancelled},
			Confirmed: confirmedTargets,
		},
	}
}

// Allows reports whether from -> to is a legal change.
func (t TransitionTable) Allows(from, to Status) bool {
	for _, target := range t.allowed[from] {
		if target == to {
			return true
		}
	}
	return false
}

// Targets returns the statuses reachable from from in one step.
func (t TransitionTable) Targets(from Status) []Status {
	targets := t.allowed[from]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// Check validates target and then the change itself. An invalid target is a
// validation error; a valid target that the table rejects is an IllegalTransitionError.
func (t TransitionTable) Check(from, to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if !t.Allows(from, to) {
		return errs.NewIllegalTransitionError(from, to)
	}
	return nil
}
