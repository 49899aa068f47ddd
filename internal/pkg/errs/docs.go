// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when an entity cannot be found
//   - MissingReferenceError: For dangling foreign references
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - InvalidStateTransitionError: For lifecycle operations attempted from the wrong state
//   - StorageUnavailableError: For persistence-layer read/write failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter relies on the sentinels to map each kind of failure to a
// transport-appropriate response: not-found to 404, validation and transition
// failures to 400, storage failures to 500.
package errs
