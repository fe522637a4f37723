// Package queries contains read-only operations that return projections of the
// stored data. Query handlers read through raw SQL on the shared *gorm.DB handle
// and never open a unit of work; each statement sees the latest committed state.
package queries
