package queries

import "gorm.io/gorm"

// NewGetOrderDetailsQueryHandlerWithHook lets tests run writers between the
// header and item reads.
func NewGetOrderDetailsQueryHandlerWithHook(db *gorm.DB, afterHeader func()) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db, afterHeader: afterHeader}
}
