// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the core:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ObjectNotFoundError: a referenced entity does not exist
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsInvalid)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify errors
//
// The transport layer relies on errors.Is against the sentinels to map
// errors deterministically onto HTTP status codes.
package errs
