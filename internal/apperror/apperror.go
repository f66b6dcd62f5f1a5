// Package apperror tags service errors with a kind so the HTTP layer can pick a
// status code without inspecting message text.
package apperror

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindStoreFailure Kind = iota
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "store_failure"
	}
}

// HTTPStatus maps a kind to the response code the API replies with.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string, details ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Store wraps a persistence failure. The underlying error stays reachable via
// errors.Is / errors.As.
func Store(err error, message string) *Error {
	return &Error{Kind: KindStoreFailure, Message: message, Err: err}
}

// KindOf reports the kind of err. Untagged errors count as store failures.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStoreFailure
}
