// Package errs holds the error types shared by every layer of the parcel
// booking service.
//
// Each type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired) with a struct carrying the
// offending parameter. Unwrap returns the sentinel, so callers classify
// failures with errors.Is and the HTTP adapter maps them to status codes
// without string matching.
package errs
