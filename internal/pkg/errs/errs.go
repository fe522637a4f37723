package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrValueIsRequired      = errors.New("value is required")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrIllegalTransition    = errors.New("illegal status transition")
	ErrStoreBusy            = errors.New("store is busy")
	ErrStoreCorruption      = errors.New("store failure")
)

// sanitize flattens multi-line values so that error messages stay on one line.
func sanitize(value any) string {
	s := fmt.Sprintf("%v", value)
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ObjectNotFoundError reports a missing customer, product or order.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports an argument that is present but unacceptable.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a numeric argument outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing argument.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ReferentialIntegrityError reports a delete rejected because other rows still
// reference the target.
type ReferentialIntegrityError struct {
	Entity string
	ID     any
	Cause  error
}

func NewReferentialIntegrityError(entity string, id any) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{Entity: entity, ID: id}
}

func NewReferentialIntegrityErrorWithCause(entity string, id any, cause error) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{Entity: entity, ID: id, Cause: cause}
}

func (e *ReferentialIntegrityError) Error() string {
	msg := fmt.Sprintf("%s: %s %s is still referenced", ErrReferentialIntegrity, e.Entity, sanitize(e.ID))
	return withCause(msg, e.Cause)
}

func (e *ReferentialIntegrityError) Unwrap() error {
	return ErrReferentialIntegrity
}

// IllegalTransitionError reports a status change that the lifecycle table rejects.
type IllegalTransitionError struct {
	From string
	To   string
}

func NewIllegalTransitionError(from, to fmt.Stringer) *IllegalTransitionError {
	return &IllegalTransitionError{From: from.String(), To: to.String()}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// StoreBusyError reports transient contention (lock timeout, serialization
// failure, deadlock). The same request may be retried.
type StoreBusyError struct {
	Operation string
	Cause     error
}

func NewStoreBusyError(operation string, cause error) *StoreBusyError {
	return &StoreBusyError{Operation: operation, Cause: cause}
}

func (e *StoreBusyError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrStoreBusy, e.Operation), e.Cause)
}

func (e *StoreBusyError) Unwrap() error {
	return ErrStoreBusy
}

// StoreCorruptionError reports a non-retryable store failure.
type StoreCorruptionError struct {
	Operation string
	Cause     error
}

func NewStoreCorruptionError(operation string, cause error) *StoreCorruptionError {
	return &StoreCorruptionError{Operation: operation, Cause: cause}
}

func (e *StoreCorruptionError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrStoreCorruption, e.Operation), e.Cause)
}

func (e *StoreCorruptionError) Unwrap() error {
	return ErrStoreCorruption
}
