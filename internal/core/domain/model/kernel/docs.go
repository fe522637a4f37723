// Package kernel provides the value objects shared by every aggregate of the
// order tracking domain.
//
// The package includes:
//   - ID: the positive integer identity assigned by the store
//   - Money: a fixed-point, non-negative amount with two decimal places
//
// Both are immutable and safe for concurrent use.
package kernel
