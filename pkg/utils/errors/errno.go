// Package errors provides the structured error code system for content-center.
//
// Error Code Format: AABBCCC (7 digits)
//
//	AA  (00-99): Service/Module code - identifies the source service
//	BB  (00-99): Category code - identifies the error category
//	CCC (000-999): Sequence number - specific error within the category
//
// The category determines the default HTTP status, so handlers never have to
// pick status codes themselves. The HTTP boundary is the only place an Errno
// is turned into a wire response.
//
// Usage:
//
//	// Using predefined errors
//	return errors.ErrArticleNotFound
//
//	// Wrapping underlying errors
//	return errors.ErrDatabase.WithCause(err)
//
//	// Custom message on a predefined code
//	return errors.ErrBadRequest.WithMessage("cover images do not match cover type")
package errors

import (
	"fmt"
	"net/http"
)

// Errno represents a structured error with a code, an HTTP status, and a message.
type Errno struct {
	// Code is the unique error code.
	Code int `json:"code"`

	// HTTP is the HTTP status code to return.
	HTTP int `json:"-"`

	// Msg is the human-readable error message.
	Msg string `json:"message"`

	// cause is the underlying error.
	cause error
}

// Error implements the error interface.
func (e *Errno) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("errno %d: %s: %v", e.Code, e.Msg, e.cause)
	}
	return fmt.Sprintf("errno %d: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause.
func (e *Errno) Unwrap() error {
	return e.cause
}

// WithCause creates a new Errno with the given cause.
func (e *Errno) WithCause(cause error) *Errno {
	return &Errno{
		Code:  e.Code,
		HTTP:  e.HTTP,
		Msg:   e.Msg,
		cause: cause,
	}
}

// WithMessage creates a new Errno with a custom message.
func (e *Errno) WithMessage(msg string) *Errno {
	return &Errno{
		Code:  e.Code,
		HTTP:  e.HTTP,
		Msg:   msg,
		cause: e.cause,
	}
}

// WithMessagef creates a new Errno with a formatted message.
func (e *Errno) WithMessagef(format string, args ...interface{}) *Errno {
	return &Errno{
		Code:  e.Code,
		HTTP:  e.HTTP,
		Msg:   fmt.Sprintf(format, args...),
		cause: e.cause,
	}
}

// HTTPStatus returns the HTTP status code.
func (e *Errno) HTTPStatus() int {
	if e.HTTP != 0 {
		return e.HTTP
	}
	return http.StatusInternalServerError
}

// Is checks if this error matches the target error code.
// Two Errnos are considered equal when their codes match, regardless of
// message or cause, so errors.Is works across WithMessage/WithCause copies.
func (e *Errno) Is(target error) bool {
	if t, ok := target.(*Errno); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new Errno with the given parameters.
func New(code int, httpStatus int, msg string) *Errno {
	return &Errno{
		Code: code,
		HTTP: httpStatus,
		Msg:  msg,
	}
}

// FromError converts any error into an *Errno.
// If err already is an Errno it is returned as-is, otherwise it is wrapped
// as an internal error so callers never leak raw error strings to the wire.
func FromError(err error) *Errno {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Errno); ok {
		return e
	}
	return ErrInternal.WithCause(err)
}

// Predefined common errors.
var (
	// OK represents a successful outcome.
	OK = &Errno{Code: 0, HTTP: http.StatusOK, Msg: "OK"}

	// ErrBadRequest indicates a malformed or invalid request payload.
	ErrBadRequest = Register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryRequest, 1),
		HTTP: http.StatusBadRequest,
		Msg:  "Bad request",
	})

	// ErrUnauthenticated indicates a missing, unknown, or revoked token.
	ErrUnauthenticated = Register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryAuth, 1),
		HTTP: http.StatusUnauthorized,
		Msg:  "Unauthorized person",
	})

	// ErrNotFound indicates a missing resource.
	ErrNotFound = Register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryResource, 1),
		HTTP: http.StatusNotFound,
		Msg:  "Resource not found",
	})

	// ErrInternal indicates an unexpected server-side failure.
	ErrInternal = Register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryInternal, 1),
		HTTP: http.StatusInternalServerError,
		Msg:  "Internal server error",
	})

	// ErrDatabase indicates a storage layer failure.
	ErrDatabase = Register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryDatabase, 1),
		HTTP: http.StatusInternalServerError,
		Msg:  "Database error",
	})

	// ErrRequestTimeout indicates the request exceeded its processing bound.
	ErrRequestTimeout = Register(&Errno{
		Code: MakeCode(ServiceCommon, CategoryTimeout, 1),
		HTTP: http.StatusGatewayTimeout,
		Msg:  "Request timed out",
	})
)

// Auth service errors.
var (
	// ErrInvalidCredentials indicates a failed credential exchange.
	ErrInvalidCredentials = Register(&Errno{
		Code: MakeCode(ServiceAuth, CategoryRequest, 1),
		HTTP: http.StatusBadRequest,
		Msg:  "Invalid phone number or code",
	})
)

// Content service errors.
var (
	// ErrArticleNotFound indicates an unknown article id.
	ErrArticleNotFound = Register(&Errno{
		Code: MakeCode(ServiceContent, CategoryResource, 1),
		HTTP: http.StatusNotFound,
		Msg:  "Article not found",
	})

	// ErrInvalidCover indicates the cover image count does not match the cover type.
	ErrInvalidCover = Register(&Errno{
		Code: MakeCode(ServiceContent, CategoryRequest, 1),
		HTTP: http.StatusBadRequest,
		Msg:  "Cover images do not match cover type",
	})

	// ErrUploadTooLarge indicates the uploaded file exceeds the size cap.
	ErrUploadTooLarge = Register(&Errno{
		Code: MakeCode(ServiceContent, CategoryRequest, 2),
		HTTP: http.StatusBadRequest,
		Msg:  "Uploaded file exceeds the size limit",
	})

	// ErrUploadMissing indicates the multipart request carried no file.
	ErrUploadMissing = Register(&Errno{
		Code: MakeCode(ServiceContent, CategoryRequest, 3),
		HTTP: http.StatusBadRequest,
		Msg:  "Please upload a file",
	})
)
