package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ordertracking/internal/adapters/out/postgres/pgerr"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler reads an order, its customer and its items.
//
// Line totals are computed from the stored unit price snapshot, never from the
// current product price. A stored total that disagrees with the lines is reported
// as errs.StoreCorruptionError.
//
// The header and the lines are read in one read-only REPEATABLE READ transaction,
// so both see the same snapshot even when the order is deleted or changed
// concurrently.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB

	// afterHeader runs between the two reads; tests use it to interleave writers.
	afterHeader func()
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	operation := fmt.Sprintf("read order %s", query.OrderID())

	var details GetOrderDetailsQueryResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var readErr error
		if details, readErr = readOrderHeader(tx, query.OrderID(), operation); readErr != nil {
			return readErr
		}
		if h.afterHeader != nil {
			h.afterHeader()
		}
		details.Items, readErr = readOrderItems(tx, query.OrderID(), operation)
		return readErr
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return GetOrderDetailsQueryResponse{}, pgerr.Translate(operation, err)
	}

	sum := kernel.Money{}
	for _, item := range details.Items {
		sum = sum.Add(item.LineTotal)
	}
	if !sum.IsEqual(details.Total) {
		return GetOrderDetailsQueryResponse{}, errs.NewStoreCorruptionError(
			operation,
			fmt.Errorf("stored total %s does not match items total %s", details.Total, sum),
		)
	}

	return details, nil
}

func readOrderHeader(
	tx *gorm.DB,
	orderID kernel.ID,
	operation string,
) (GetOrderDetailsQueryResponse, error) {
	var (
		id, customerID       int64
		customerName, status string
		total                decimal.Decimal
		createdAt, updatedAt time.Time
	)

	row := tx.Raw(`
		SELECT
			o.id,
			o.customer_id,
			c.name,
			o.status,
			o.total,
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = ?
	`, orderID.Int64()).Row()

	err := row.Scan(&id, &customerID, &customerName, &status, &total, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderDetailsQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.Int64())
	}
	if err != nil {
		return GetOrderDetailsQueryResponse{}, pgerr.Translate(operation, err)
	}

	details := GetOrderDetailsQueryResponse{
		CustomerName: customerName,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	if details.ID, err = scannedID(operation, id); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	if details.CustomerID, err = scannedID(operation, customerID); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	if details.Status, err = scannedStatus(operation, status); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	if details.Total, err = scannedMoney(operation, total); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	return details, nil
}

func readOrderItems(
	tx *gorm.DB,
	orderID kernel.ID,
	operation string,
) ([]OrderItemDetails, error) {
	rows, err := tx.Raw(`
		SELECT
			oi.id,
			oi.product_id,
			p.name,
			p.sku,
			oi.quantity,
			oi.unit_price,
			oi.quantity * oi.unit_price AS line_total
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY oi.id
	`, orderID.Int64()).Rows()
	if err != nil {
		return nil, pgerr.Translate(operation, err)
	}
	defer rows.Close()

	items := make([]OrderItemDetails, 0)
	for rows.Next() {
		var (
			item                 OrderItemDetails
			id, productID        int64
			unitPrice, lineTotal decimal.Decimal
		)

		if err = rows.Scan(&id, &productID, &item.ProductName, &item.SKU, &item.Quantity, &unitPrice, &lineTotal); err != nil {
			return nil, pgerr.Translate(operation, err)
		}

		if item.ID, err = scannedID(operation, id); err != nil {
			return nil, err
		}
		if item.ProductID, err = scannedID(operation, productID); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = scannedMoney(operation, unitPrice); err != nil {
			return nil, err
		}
		if item.LineTotal, err = scannedMoney(operation, lineTotal); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Translate(operation, err)
	}

	return items, nil
}
