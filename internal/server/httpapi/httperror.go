package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
)

// HTTPError carries an HTTP status code and a user-facing message. Handlers
// return it when an endpoint needs a specific code or wording; anything else
// is mapped from the service sentinels by toHTTPError.
type HTTPError struct {
	cause   error
	Code    int
	Message string
}

func (he *HTTPError) Error() string {
	return he.Message
}

func (he *HTTPError) Unwrap() error {
	return he.cause
}

func errBadRequest(message string) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, Message: message, cause: errors.New(message)}
}

func errUnauthorized(message string) *HTTPError {
	return &HTTPError{Code: http.StatusUnauthorized, Message: message, cause: errors.New(message)}
}

// toHTTPError maps a handler error to the response to send. Authorization
// failures are always 401; conflicts and validation failures are 400; any
// unexpected fault is a 500 carrying the error's message.
func toHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return &HTTPError{Code: http.StatusUnauthorized, Message: "You are not signed in!", cause: err}
	case errors.Is(err, common.ErrorAlreadyExists):
		return &HTTPError{Code: http.StatusBadRequest, Message: "User already exists!", cause: err}
	case errors.Is(err, common.ErrorNotFound):
		return &HTTPError{Code: http.StatusNotFound, Message: "Resource not found", cause: err}
	default:
		return &HTTPError{Code: http.StatusInternalServerError, Message: err.Error(), cause: err}
	}
}
