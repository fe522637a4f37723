package kernel

import (
	"math"
	"strconv"
	"strings"

	"ordertracking/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or ParseID")

// ID is the store-assigned integer identity of a customer, product, order or
// order item. Identities are positive; the zero value means "not assigned yet"
// and fails Validate.
//
// Example:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//	fmt.Println(id) // 42
type ID struct {
	value int64
}

// NewID wraps a positive integer identity.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsOutOfRangeError("id", value, int64(1), int64(math.MaxInt64))
	}
	return ID{value: value}, nil
}

// ParseID parses a decimal identity as it arrives from a URL path or a CLI flag.
func ParseID(s string) (ID, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Int64 returns the raw identity, used at the storage boundary.
func (i ID) Int64() int64 {
	return i.value
}

func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// IsZero reports whether no identity has been assigned.
func (i ID) IsZero() bool {
	return i.value == 0
}

// Validate returns ErrIDIsNotConstructed for an unassigned identity.
func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
