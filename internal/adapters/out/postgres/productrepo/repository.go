package productrepo

import (
	"context"
	"errors"
	"fmt"

	"ordertracking/internal/adapters/out/postgres/pgerr"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/product"
	"ordertracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a repository on db, which may be a transaction.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add inserts a new product and assigns the generated id.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("sku", fmt.Errorf("%s already exists", p.SKU()))
		}
		return pgerr.Translate("add product", err)
	}

	return assignID(p, dto.ID)
}

// AddIfAbsent inserts p unless its SKU is taken. Either way p ends up carrying
// the id of the stored row.
func (r *GormProductRepository) AddIfAbsent(ctx context.Context, p *product.Product) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "sku"}}, DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		return false, pgerr.Translate("add product", result.Error)
	}

	if result.RowsAffected > 0 {
		return true, assignID(p, dto.ID)
	}

	var existing ProductDTO
	if err := r.db.WithContext(ctx).Select("id").First(&existing, "sku = ?", p.SKU()).Error; err != nil {
		return false, pgerr.Translate("find product by sku", err)
	}
	return false, assignID(p, existing.ID)
}

// Get retrieves a product by id.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForSnapshot retrieves a product holding FOR SHARE on its row, which blocks
// concurrent price updates until the surrounding transaction ends.
func (r *GormProductRepository) GetForSnapshot(ctx context.Context, id kernel.ID) (*product.Product, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "SHARE"}), id)
}

// UpdatePrice persists the current price of p.
func (r *GormProductRepository) UpdatePrice(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", p.ID().Int64()).
		Update("price", p.Price().Decimal())
	if result.Error != nil {
		return pgerr.Translate("update product price", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", p.ID().Int64())
	}
	return nil
}

// Delete removes a product that no order item references.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		if pgerr.IsForeignKeyViolation(result.Error) {
			return errs.NewReferentialIntegrityErrorWithCause("product", id.Int64(), result.Error)
		}
		return pgerr.Translate("delete product", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.Int64())
	}
	return nil
}

func (r *GormProductRepository) get(q *gorm.DB, id kernel.ID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := q.First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.Int64())
		}
		return nil, pgerr.Translate("get product", err)
	}

	return toDomain(dto)
}

func assignID(p *product.Product, raw int64) error {
	id, err := kernel.NewID(raw)
	if err != nil {
		return errs.NewStoreCorruptionError("assign product id", err)
	}
	return p.AssignID(id)
}
