// Package errs provides standardized error types for the order tracking application.
// Every failure surfaced by the core belongs to exactly one Kind, so callers can decide
// how to react without inspecting messages.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: a customer, product or order does not exist
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - ReferentialIntegrityError: a delete is blocked by rows that reference the target
//   - IllegalTransitionError: an order status change outside the lifecycle table
//   - StoreBusyError: transient contention in the store, the only retryable kind
//   - StoreCorruptionError: fatal store or I/O failure, or persisted data breaking an invariant
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works through wrapping
//
// Use KindOf to classify an arbitrary (possibly wrapped) error and IsRetryable to
// decide whether a caller may repeat the same request unchanged.
package errs
