// Package errs defines the application error taxonomy. Every domain failure is an
// *Error carrying a broad category (Code) used for transport mapping and a precise
// Kind that callers match with errors.Is.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Error categories.
const (
	EINVALID      = "invalid"
	EUNAUTHORIZED = "unauthorized"
	EFORBIDDEN    = "forbidden"
	ENOTFOUND     = "not_found"
	ECONFLICT     = "conflict"
	EINTERNAL     = "internal"
)

// Error kinds.
const (
	KindValidation         = "VALIDATION_ERROR"
	KindDuplicateUsername  = "DUPLICATE_USERNAME"
	KindInvalidCredentials = "INVALID_CREDENTIALS"
	KindTokenExpired       = "TOKEN_EXPIRED"
	KindTokenInvalid       = "TOKEN_INVALID"
	KindUserNotFound       = "USER_NOT_FOUND"
	KindSelfFollow         = "SELF_FOLLOW_NOT_ALLOWED"
	KindNotFollowing       = "NOT_FOLLOWING"
	KindForbidden          = "FORBIDDEN"
	KindInternal           = "INTERNAL_ERROR"
)

type Error struct {
	Code    string
	Kind    string
	Message string
	// Fields holds per-field messages for validation failures.
	Fields map[string]string

	cause error
}

var (
	ErrValidation         = &Error{Code: EINVALID, Kind: KindValidation, Message: "Validation Error"}
	ErrDuplicateUsername  = &Error{Code: ECONFLICT, Kind: KindDuplicateUsername, Message: "Username already exists"}
	ErrInvalidCredentials = &Error{Code: EUNAUTHORIZED, Kind: KindInvalidCredentials, Message: "Invalid username or password"}
	ErrTokenExpired       = &Error{Code: EUNAUTHORIZED, Kind: KindTokenExpired, Message: "Token has expired"}
	ErrTokenInvalid       = &Error{Code: EUNAUTHORIZED, Kind: KindTokenInvalid, Message: "Token is invalid"}
	ErrUserNotFound       = &Error{Code: ENOTFOUND, Kind: KindUserNotFound, Message: "User not found"}
	ErrSelfFollow         = &Error{Code: EINVALID, Kind: KindSelfFollow, Message: "You cannot follow yourself"}
	ErrNotFollowing       = &Error{Code: ENOTFOUND, Kind: KindNotFollowing, Message: "User not following"}
	ErrForbidden          = &Error{Code: EFORBIDDEN, Kind: KindForbidden, Message: "Access denied"}
	ErrInternal           = &Error{Code: EINTERNAL, Kind: KindInternal, Message: "Internal server error"}
)

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports kind equality so that errors.Is(err, errs.ErrUserNotFound) matches any
// user-not-found error regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Errorf returns an error of the given category and kind with a formatted message.
func Errorf(code, kind, format string, args ...any) *Error {
	return &Error{Code: code, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validation builds a validation error from per-field messages.
func Validation(fields map[string]string) *Error {
	return &Error{Code: EINVALID, Kind: KindValidation, Message: ErrValidation.Message, Fields: fields}
}

// Internal wraps an unexpected failure. The cause is kept for logging and never
// rendered to clients.
func Internal(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: EINTERNAL, Kind: KindInternal, Message: ErrInternal.Message, cause: err}
}

// ErrorCode returns the category of err, EINTERNAL for foreign errors and "" for nil.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorKind returns the kind of err, KindInternal for foreign errors and "" for nil.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ErrorMessage returns the client-safe message of err.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ErrInternal.Message
}

// ErrorFields returns per-field validation messages of err, if any.
func ErrorFields(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

var statusCodes = map[string]int{
	EINVALID:      http.StatusBadRequest,
	EUNAUTHORIZED: http.StatusUnauthorized,
	EFORBIDDEN:    http.StatusForbidden,
	ENOTFOUND:     http.StatusNotFound,
	ECONFLICT:     http.StatusConflict,
	EINTERNAL:     http.StatusInternalServerError,
}

// HTTPStatus maps err to its HTTP status code.
func HTTPStatus(err error) int {
	if status, ok := statusCodes[ErrorCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
