// Package errs provides the standardized error kinds used across the
// application: missing or invalid input, object not found, permission denied,
// operations forbidden by the current entity state, and unique-constraint
// conflicts at the store.
//
// Each kind follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for classification
//     with errors.Is
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Best-effort side-effect failures (invoice generation, notification
// dispatch) are deliberately not an error kind: they are logged where they
// occur and never surfaced to callers.
package errs
