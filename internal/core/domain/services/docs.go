// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the order tracking system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PriceSnapshotResolver: captures the current product price for each order line
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple aggregates following Domain-Driven Design principles.
package services
