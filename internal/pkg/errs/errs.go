package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the application error taxonomy. Each typed error below
// unwraps to one of these, so callers can classify failures with errors.Is
// without inspecting concrete types.
var (
	// ErrObjectNotFound indicates the requested entity does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrMissingReference indicates a dangling foreign reference, such as an
	// order line pointing at a product that does not exist.
	ErrMissingReference = errors.New("missing reference")

	// ErrValueIsRequired indicates a required value is absent.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid indicates a value is present but not acceptable.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrInvalidStateTransition indicates an operation was attempted from a
	// lifecycle state that does not allow it.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrStorageUnavailable indicates the underlying store failed to read or write.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// sanitize strips newlines from error details so a single log line stays a
// single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError is returned when an entity cannot be located by its
// identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage-layer error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// MissingReferenceError is returned when an entity references another entity
// that does not exist, e.g. an order line naming an unknown product.
type MissingReferenceError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewMissingReferenceError creates a MissingReferenceError without an underlying cause.
func NewMissingReferenceError(paramName string, id any) *MissingReferenceError {
	return &MissingReferenceError{ParamName: paramName, ID: id}
}

// NewMissingReferenceErrorWithCause creates a MissingReferenceError wrapping
// an underlying cause.
func NewMissingReferenceErrorWithCause(paramName string, id any, cause error) *MissingReferenceError {
	return &MissingReferenceError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *MissingReferenceError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrMissingReference, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %v", ErrMissingReference, e.ParamName, e.ID))
}

func (e *MissingReferenceError) Unwrap() error {
	return ErrMissingReference
}

// ValueIsRequiredError is returned when a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError is returned when a supplied value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// InvalidStateTransitionError is returned when a lifecycle operation is
// attempted from a state that does not permit it. From carries the current
// state so the caller can report why the operation was rejected.
type InvalidStateTransitionError struct {
	Operation string
	From      string
	Cause     error
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for
// the given operation attempted from the given state.
func NewInvalidStateTransitionError(operation, from string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Operation: operation, From: from}
}

// NewInvalidStateTransitionErrorWithCause creates an InvalidStateTransitionError
// wrapping an underlying cause.
func NewInvalidStateTransitionErrorWithCause(operation, from string, cause error) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Operation: operation, From: from, Cause: cause}
}

func (e *InvalidStateTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is not allowed from %s (cause: %s)",
			ErrInvalidStateTransition, e.Operation, e.From, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is not allowed from %s", ErrInvalidStateTransition, e.Operation, e.From))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// StorageUnavailableError is returned when the persistence layer fails to
// serve a read or write. Resource names what was being accessed; the cause
// preserves the storage-layer diagnostic.
type StorageUnavailableError struct {
	Resource string
	Cause    error
}

// NewStorageUnavailableError creates a StorageUnavailableError without an
// underlying cause.
func NewStorageUnavailableError(resource string) *StorageUnavailableError {
	return &StorageUnavailableError{Resource: resource}
}

// NewStorageUnavailableErrorWithCause creates a StorageUnavailableError
// wrapping the storage-layer error.
func NewStorageUnavailableErrorWithCause(resource string, cause error) *StorageUnavailableError {
	return &StorageUnavailableError{Resource: resource, Cause: cause}
}

func (e *StorageUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrStorageUnavailable, e.Resource, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrStorageUnavailable, e.Resource))
}

func (e *StorageUnavailableError) Unwrap() error {
	return ErrStorageUnavailable
}
