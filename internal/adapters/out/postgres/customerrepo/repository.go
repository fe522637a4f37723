package customerrepo

import (
	"context"
	"errors"
	"fmt"

	"ordertracking/internal/adapters/out/postgres/pgerr"
	"ordertracking/internal/core/domain/model/customer"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a repository on db, which may be a transaction.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add inserts a new customer and assigns the generated id.
func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%s already exists", c.Email()))
		}
		return pgerr.Translate("add customer", err)
	}

	return assignID(c, dto.ID)
}

// AddIfAbsent inserts c unless a customer with the same email exists. Customers
// without an email have no natural key and are always inserted.
func (r *GormCustomerRepository) AddIfAbsent(ctx context.Context, c *customer.Customer) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(c)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		return false, pgerr.Translate("add customer", result.Error)
	}

	if result.RowsAffected > 0 {
		return true, assignID(c, dto.ID)
	}

	var existing CustomerDTO
	if err := r.db.WithContext(ctx).Select("id").First(&existing, "email = ?", c.Email()).Error; err != nil {
		return false, pgerr.Translate("find customer by email", err)
	}
	return false, assignID(c, existing.ID)
}

// Get retrieves a customer by id.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.Int64())
		}
		return nil, pgerr.Translate("get customer", err)
	}

	return toDomain(dto)
}

func assignID(c *customer.Customer, raw int64) error {
	id, err := kernel.NewID(raw)
	if err != nil {
		return errs.NewStoreCorruptionError("assign customer id", err)
	}
	return c.AssignID(id)
}
