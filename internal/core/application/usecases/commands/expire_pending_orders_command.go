package commands

import (
	"errors"
	"time"

	"ordertracking/internal/pkg/errs"
	"ordertracking/internal/pkg/guard"
)

// DefaultExpireBatchSize bounds how many orders one expiry run cancels.
const DefaultExpireBatchSize = 100

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand cancels pending orders created before cutoff.
type ExpirePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time
	limit  int

	guard guard.ConstructorGuard
}

// NewExpirePendingOrdersCommand builds the command. A zero limit means DefaultExpireBatchSize.
func NewExpirePendingOrdersCommand(cutoff time.Time, limit int) (ExpirePendingOrdersCommand, error) {
	cmd := ExpirePendingOrdersCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCutoff(cutoff),
		cmd.setLimit(limit),
	); err != nil {
		return ExpirePendingOrdersCommand{}, err
	}

	return cmd, nil
}

func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

func (c ExpirePendingOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c ExpirePendingOrdersCommand) Limit() int {
	return c.limit
}

func (c *ExpirePendingOrdersCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}
	c.cutoff = cutoff
	return nil
}

func (c *ExpirePendingOrdersCommand) setLimit(limit int) error {
	if limit == 0 {
		limit = DefaultExpireBatchSize
	}
	if limit < 0 {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, DefaultExpireBatchSize)
	}
	c.limit = limit
	return nil
}
