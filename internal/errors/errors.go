package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func statusCodeIs(err error, code int) bool {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode == code
	}
	return false
}

func IsNotFound(err error) bool {
	return statusCodeIs(err, http.StatusNotFound)
}

func IsUnauthorized(err error) bool {
	return statusCodeIs(err, http.StatusUnauthorized)
}

func IsConflict(err error) bool {
	return statusCodeIs(err, http.StatusConflict)
}
