// Package errs provides standardized error types for the shipment tracking
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers the failure taxonomy of the system:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: validation failures
//   - ObjectNotFoundError: unknown order or correlation identifiers
//   - NotAuthorizedError: a party attempting an operation it does not own
//   - StateConflictError: operations illegal in the current lifecycle state
//   - ExternalFailureError: errors or malformed payloads from external collaborators
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrStateConflict)
//   - A struct type carrying error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Handlers and adapters never match on message text; they classify with
// errors.Is against the sentinels.
package errs
