package order

import (
	"fmt"
	"strings"

	"ordertracking/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Shipped
//	   │            │
//	   │            └──> Cancelled  (when the cancellation policy allows it)
//	   └──────────────> Cancelled
//
// Status is persisted by its lowercase name, see String and ParseStatus.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Confirmed indicates the order was accepted and awaits shipping.
	Confirmed

	// Shipped indicates the order left the warehouse. Terminal.
	Shipped

	// Cancelled indicates the order will not be fulfilled. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Cancelled: "cancelled",
	}
}

func getValidStatuses() map[string]Status {
	return map[string]Status{
		"pending":   Pending,
		"confirmed": Confirmed,
		"shipped":   Shipped,
		"cancelled": Cancelled,
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Shipped, Cancelled}
}

// ParseStatus converts a persisted or user supplied name into a Status.
// Matching ignores case and surrounding whitespace.
//
// Example:
//
//	status, err := order.ParseStatus("Confirmed")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(status) // Output: "confirmed"
func ParseStatus(s string) (Status, error) {
	if status, ok := getValidStatuses()[strings.ToLower(strings.TrimSpace(s))]; ok {
		return status, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of Pending, Confirmed, Shipped or Cancelled.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions leave this status.
func (s Status) IsTerminal() bool {
	return s == Shipped || s == Cancelled
}
