// Package errs provides standardized error types for the food-ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: a lookup by identifier found no match
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a numeric value lies outside its bounds
//   - ForbiddenError: the caller does not own the targeted resource
//   - PreconditionFailedError: a state- or time-gated condition is unmet
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// The HTTP adapter relies on this classification to translate domain
// errors into status codes, keeping transport concerns out of the core.
package errs
