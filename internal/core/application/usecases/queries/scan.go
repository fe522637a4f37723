package queries

import (
	"fmt"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Rows that fail to convert were written outside the application.

func scannedID(operation string, value int64) (kernel.ID, error) {
	id, err := kernel.NewID(value)
	if err != nil {
		return kernel.ID{}, errs.NewStoreCorruptionError(operation, err)
	}
	return id, nil
}

func scannedMoney(operation string, value decimal.Decimal) (kernel.Money, error) {
	money, err := kernel.NewMoney(value)
	if err != nil {
		return kernel.Money{}, errs.NewStoreCorruptionError(operation, err)
	}
	return money, nil
}

func scannedStatus(operation, value string) (order.Status, error) {
	status, err := order.ParseStatus(value)
	if err != nil {
		return order.Unknown, errs.NewStoreCorruptionError(operation, fmt.Errorf("status %q: %w", value, err))
	}
	return status, nil
}
