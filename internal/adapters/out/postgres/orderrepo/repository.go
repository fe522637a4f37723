package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordertracking/internal/adapters/out/postgres/pgerr"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Foreign keys declared by the schema migrations.
const (
	fkOrdersCustomer    = "fk_orders_customer"
	fkOrderItemsProduct = "fk_order_items_product"
)

// Items keep insertion order, which is the order of their generated ids.
const orderItemsOrderByKey = "id"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order row and then its items, and assigns the generated ids
// to the aggregate. Both inserts run on the repository's connection, so inside
// a unit of work they commit or roll back together.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	items := dto.Items
	dto.Items = nil

	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return translateInsertError(aggregate, err)
	}

	for i := range items {
		items[i].OrderID = dto.ID
	}
	if err := db.Create(&items).Error; err != nil {
		return translateInsertError(aggregate, err)
	}

	orderID, err := kernel.NewID(dto.ID)
	if err != nil {
		return errs.NewStoreCorruptionError("assign order id", err)
	}

	itemIDs := make([]kernel.ID, 0, len(items))
	for _, item := range items {
		itemID, idErr := kernel.NewID(item.ID)
		if idErr != nil {
			return errs.NewStoreCorruptionError("assign order item id", idErr)
		}
		itemIDs = append(itemIDs, itemID)
	}

	return aggregate.AssignIdentity(orderID, itemIDs)
}

// Get retrieves an order with its items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.load(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order holding FOR UPDATE on its row until the
// surrounding transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.load(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// ListItems returns the items of an order in insertion order.
func (r *GormOrderRepository) ListItems(ctx context.Context, orderID kernel.ID) ([]*order.Item, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderItemDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Int64()).
		Order(orderItemsOrderByKey).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate("list order items", err)
	}

	items, err := itemsToDomain(dtos)
	if err != nil {
		return nil, corrupt(orderID.Int64(), err)
	}
	return items, nil
}

// UpdateStatus persists the status and updated_at of an existing order.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Int64()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return pgerr.Translate("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().Int64())
	}

	return nil
}

// Delete removes an order; the schema cascades the delete to its items.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return pgerr.Translate("delete order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.Int64())
	}
	return nil
}

// ListPendingCreatedBefore returns ids of pending orders created before cutoff, oldest first.
func (r *GormOrderRepository) ListPendingCreatedBefore(
	ctx context.Context, cutoff time.Time, limit int,
) ([]kernel.ID, error) {
	var raw []int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ? AND created_at < ?", order.Pending.String(), cutoff).
		Order("created_at, id").
		Limit(limit).
		Pluck("id", &raw).Error
	if err != nil {
		return nil, pgerr.Translate("list pending orders", err)
	}

	ids := make([]kernel.ID, 0, len(raw))
	for _, value := range raw {
		id, idErr := kernel.NewID(value)
		if idErr != nil {
			return nil, errs.NewStoreCorruptionError("list pending orders", idErr)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *GormOrderRepository) load(q *gorm.DB, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := q.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order(orderItemsOrderByKey) }).
		First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.Int64())
		}
		return nil, pgerr.Translate("get order", err)
	}

	return toDomain(dto)
}

// translateInsertError names the missing reference when a foreign key rejects an insert.
func translateInsertError(aggregate *order.Order, err error) error {
	if pgerr.IsForeignKeyViolation(err) {
		switch pgerr.Constraint(err) {
		case fkOrdersCustomer:
			return errs.NewObjectNotFoundErrorWithCause("customer", aggregate.CustomerID().Int64(), err)
		case fkOrderItemsProduct:
			return errs.NewObjectNotFoundErrorWithCause("product", "referenced by order item", err)
		}
	}
	return pgerr.Translate("add order", err)
}
