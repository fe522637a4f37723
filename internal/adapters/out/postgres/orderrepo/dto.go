// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"errors"
	"fmt"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by name; items live in their own table and are deleted with
// the order.
type OrderDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID int64           `gorm:"not null;index"`
	Status     string          `gorm:"not null"`
	Total      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line with its unit price snapshot.
type OrderItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Int64(),
			OrderID:   o.ID().Int64(),
			ProductID: item.ProductID().Int64(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:         o.ID().Int64(),
		CustomerID: o.CustomerID().Int64(),
		Status:     o.Status().String(),
		Total:      o.Total().Decimal(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
		Items:      items,
	}
}

// toDomain converts a database DTO to an order aggregate. Any row that cannot be
// restored, including a total that disagrees with the items, is a StoreCorruptionError.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, corrupt(dto.ID, err)
	}

	customerID, err := kernel.NewID(dto.CustomerID)
	if err != nil {
		return nil, corrupt(dto.ID, err)
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, corrupt(dto.ID, err)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, corrupt(dto.ID, err)
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, corrupt(dto.ID, err)
	}

	return order.RestoreOrder(id, customerID, status, items, total, dto.CreatedAt, dto.UpdatedAt)
}

func itemsToDomain(dtos []OrderItemDTO) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", dto.ID, err)
	}

	productID, err := kernel.NewID(dto.ProductID)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", dto.ID, err)
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", dto.ID, err)
	}

	return order.RestoreItem(id, productID, dto.Quantity, unitPrice)
}

func corrupt(id int64, err error) error {
	var corruption *errs.StoreCorruptionError
	if errors.As(err, &corruption) {
		return err
	}
	return errs.NewStoreCorruptionError(fmt.Sprintf("load order %d", id), err)
}
