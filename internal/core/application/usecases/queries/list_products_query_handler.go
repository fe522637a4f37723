package queries

import (
	"context"

	"ordertracking/internal/adapters/out/postgres/pgerr"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const listProductsOperation = "list products"

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, sku, price, created_at
		FROM products
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, pgerr.Translate(listProductsOperation, err)
	}
	defer rows.Close()

	products := make([]ProductView, 0)
	for rows.Next() {
		var (
			view  ProductView
			id    int64
			price decimal.Decimal
		)

		if err = rows.Scan(&id, &view.Name, &view.SKU, &price, &view.CreatedAt); err != nil {
			return nil, pgerr.Translate(listProductsOperation, err)
		}

		if view.ID, err = scannedID(listProductsOperation, id); err != nil {
			return nil, err
		}
		if view.Price, err = scannedMoney(listProductsOperation, price); err != nil {
			return nil, err
		}

		products = append(products, view)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Translate(listProductsOperation, err)
	}

	return products, nil
}
