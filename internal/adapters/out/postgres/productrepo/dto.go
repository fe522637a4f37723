// Package productrepo persists catalogue products with GORM.
package productrepo

import (
	"fmt"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/product"
	"ordertracking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ProductDTO maps the products table. Prices are numeric(12,2) and are read
// into decimal.Decimal so no float ever touches money.
type ProductDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"not null"`
	SKU       string          `gorm:"column:sku;uniqueIndex;not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:        p.ID().Int64(),
		Name:      p.Name(),
		SKU:       p.SKU(),
		Price:     p.Price().Decimal(),
		CreatedAt: p.CreatedAt(),
	}
}

// toDomain rebuilds a product. A row that fails domain validation was written
// outside this application and is reported as corruption.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, corrupt(dto.ID, err)
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, corrupt(dto.ID, err)
	}

	p, err := product.RestoreProduct(id, dto.Name, dto.SKU, price, dto.CreatedAt)
	if err != nil {
		return nil, corrupt(dto.ID, err)
	}
	return p, nil
}

func corrupt(id int64, err error) error {
	return errs.NewStoreCorruptionError(fmt.Sprintf("load product %d", id), err)
}
