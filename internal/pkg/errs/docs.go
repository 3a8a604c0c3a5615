// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when a referenced object cannot be found
//   - ValueIsInvalidError: For when a value fails validation
//   - ValueIsOutOfRangeError: For when a numeric value is outside its bounds
//   - ValueIsRequiredError: For when a required value is missing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The store adapter translates driver-level "record not found" conditions into
// ObjectNotFoundError so that callers can classify failures with errors.Is and
// errors.As without importing persistence packages.
package errs
