package queries

import (
	"context"
	"time"

	"ordertracking/internal/adapters/out/postgres/pgerr"
	"ordertracking/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const listOrdersOperation = "list orders"

// ListOrdersQueryHandler returns order summaries joined with the customer name.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns at most query.Limit() orders, newest first. Orders created in
// the same instant are ordered by descending id.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var statusFilter any
	if query.Status() != order.Unknown {
		statusFilter = query.Status().String()
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			c.name,
			o.status,
			o.total,
			(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count,
			o.created_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE ?::text IS NULL OR o.status = ?::text
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ?
	`, statusFilter, statusFilter, query.Limit()).Rows()
	if err != nil {
		return nil, pgerr.Translate(listOrdersOperation, err)
	}
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			summary        OrderSummary
			id, customerID int64
			status         string
			total          decimal.Decimal
			createdAt      time.Time
		)

		if err = rows.Scan(&id, &customerID, &summary.CustomerName, &status, &total, &summary.ItemCount, &createdAt); err != nil {
			return nil, pgerr.Translate(listOrdersOperation, err)
		}

		if summary.ID, err = scannedID(listOrdersOperation, id); err != nil {
			return nil, err
		}
		if summary.CustomerID, err = scannedID(listOrdersOperation, customerID); err != nil {
			return nil, err
		}
		if summary.Status, err = scannedStatus(listOrdersOperation, status); err != nil {
			return nil, err
		}
		if summary.Total, err = scannedMoney(listOrdersOperation, total); err != nil {
			return nil, err
		}
		summary.CreatedAt = createdAt

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Translate(listOrdersOperation, err)
	}

	return summaries, nil
}
