// Package errs provides standardized error types for the gescom application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrDuplicateKey)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// Callers classify failures with errors.Is against the sentinels rather
// than matching concrete struct types, which lets the storage and transport
// layers translate their own failures into these kinds.
package errs
