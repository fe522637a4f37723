package http

import (
	"time"

	"ordertracking/internal/core/application/usecases/queries"
)

type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type NewCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type NewProduct struct {
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Price string `json:"price"`
}

type PriceChange struct {
	Price string `json:"price"`
}

type NewOrderLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type NewOrder struct {
	CustomerID int64          `json:"customer_id"`
	Items      []NewOrderLine `json:"items"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type Created struct {
	ID int64 `json:"id"`
}

type Transition struct {
	OrderID int64  `json:"order_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// Money amounts are rendered as fixed two-decimal strings to avoid float rounding.

type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderSummary struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	Total        string    `json:"total"`
	ItemCount    int       `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type OrderItem struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

type Order struct {
	ID           int64       `json:"id"`
	CustomerID   int64       `json:"customer_id"`
	CustomerName string      `json:"customer_name"`
	Status       string      `json:"status"`
	Total        string      `json:"total"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Items        []OrderItem `json:"items"`
}

func toProduct(view queries.ProductView) Product {
	return Product{
		ID:        view.ID.Int64(),
		Name:      view.Name,
		SKU:       view.SKU,
		Price:     view.Price.String(),
		CreatedAt: view.CreatedAt,
	}
}

func toOrderSummary(summary queries.OrderSummary) OrderSummary {
	return OrderSummary{
		ID:           summary.ID.Int64(),
		CustomerID:   summary.CustomerID.Int64(),
		CustomerName: summary.CustomerName,
		Status:       summary.Status.String(),
		Total:        summary.Total.String(),
		ItemCount:    summary.ItemCount,
		CreatedAt:    summary.CreatedAt,
	}
}

func toOrder(details queries.GetOrderDetailsQueryResponse) Order {
	items := make([]OrderItem, len(details.Items))
	for i, item := range details.Items {
		items[i] = OrderItem{
			ID:          item.ID.Int64(),
			ProductID:   item.ProductID.Int64(),
			ProductName: item.ProductName,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			LineTotal:   item.LineTotal.String(),
		}
	}

	return Order{
		ID:           details.ID.Int64(),
		CustomerID:   details.CustomerID.Int64(),
		CustomerName: details.CustomerName,
		Status:       details.Status.String(),
		Total:        details.Total.String(),
		CreatedAt:    details.CreatedAt,
		UpdatedAt:    details.UpdatedAt,
		Items:        items,
	}
}
