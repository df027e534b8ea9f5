// Package cerr provides the categorized errors of the core layer.
// Each category wraps a cause error and maps to one HTTP status code,
// so the adapters layer can serialize errors without switching on
// their concrete types. All categories are local, synchronous, and
// non-retryable.
package cerr

import (
	"fmt"
	"net/http"
)

type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

// BadRequest categorizes err as a validation failure, that is, a
// malformed or out-of-range field value.
func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

// Authentication categorizes err as a credentials mismatch.
func Authentication(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusUnauthorized}
}

// Authorization categorizes err as a missing privilege, e.g., a
// non-admin user asking for an admin-only operation.
func Authorization(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusForbidden}
}

// NotFound categorizes err as a reference to an unknown identifier.
func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

// Conflict categorizes err as a uniqueness violation, e.g., a
// duplicate username.
func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}
