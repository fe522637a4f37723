package errs

import (
	"context"
	"errors"
)

// Kind is the category of a failure as seen by callers of the core.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindReferentialIntegrity
	KindIllegalTransition
	KindStoreBusy
	KindStoreCorruption
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindValidation:
		return "ValidationError"
	case KindReferentialIntegrity:
		return "ReferentialIntegrityError"
	case KindIllegalTransition:
		return "IllegalTransitionError"
	case KindStoreBusy:
		return "StoreBusy"
	case KindStoreCorruption:
		return "StoreCorruption"
	case KindUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// KindOf classifies err by walking its wrap chain. Errors joined with errors.Join
// take the kind of the first member that has one. An expired or cancelled context
// counts as StoreBusy: nothing was committed and the call may be repeated.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	case errors.Is(err, ErrReferentialIntegrity):
		return KindReferentialIntegrity
	case errors.Is(err, ErrIllegalTransition):
		return KindIllegalTransition
	case errors.Is(err, ErrStoreBusy),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return KindStoreBusy
	case errors.Is(err, ErrStoreCorruption):
		return KindStoreCorruption
	}
	return KindUnknown
}

// IsRetryable reports whether the same request may succeed if repeated unchanged.
func IsRetryable(err error) bool {
	return KindOf(err) == KindStoreBusy
}
