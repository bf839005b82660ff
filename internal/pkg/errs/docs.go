// Package errs provides the shared error types of the marketplace service.
//
// Every type follows the same shape: a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...),
// a struct carrying the details, constructors with and without a cause, and Unwrap so that
// callers classify errors with errors.Is against the sentinel.
//
// Domain-specific rejections (insufficient stock, invalid status transition, forbidden role)
// live next to the aggregates that raise them; this package only holds the generic ones,
// including StorageFailureError, which marks infrastructure failures that must be reported
// to clients as a generic failure.
package errs
