// Package order provides domain entities and business logic for order management
// in the order tracking system. It implements the Order aggregate root together with
// its line items and the status lifecycle.
//
// The package includes:
//   - Order: The aggregate root that owns its items, total and status
//   - Item: A line of an order with a quantity and a unit price snapshot
//   - Status: The lifecycle state of an order
//   - TransitionTable: The set of legal status changes for a cancellation policy
//
// Key business rules:
//   - An order has at least one item, and every item has a positive quantity
//   - The unit price of an item is captured when the order is created and never changes
//   - The order total always equals the sum of quantity times unit price over its items
//   - Status follows: Pending -> Confirmed -> Shipped, and Pending or Confirmed -> Cancelled
//   - Shipped and Cancelled are terminal; no status re-enters Pending
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
