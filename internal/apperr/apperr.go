// Package apperr holds the application error taxonomy and its HTTP mapping.
package apperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindNotFound   Kind = "NOT_FOUND"
	KindPermission Kind = "PERMISSION"
	KindAuth       Kind = "AUTH"
	KindConflict   Kind = "CONFLICT"
	KindInternal   Kind = "INTERNAL"
)

// Error is returned by services. Message is safe to show to the caller;
// Cause is only logged.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// WithStatus returns a copy of e answered with a different status code.
func (e *Error) WithStatus(status int) *Error {
	cp := *e
	cp.Status = status
	return &cp
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusUnprocessableEntity, Message: msg}
}

// InvalidID is the validation failure for a malformed identifier. It answers
// 401 like the rest of the API does for bad ids.
func InvalidID(msg string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusUnauthorized, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: msg}
}

func Permission(msg string) *Error {
	return &Error{Kind: KindPermission, Status: http.StatusForbidden, Message: msg}
}

// Auth covers bad credentials (422) as well as bad sessions, see Unauthorized.
func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Status: http.StatusUnprocessableEntity, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindAuth, Status: http.StatusUnauthorized, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Status: http.StatusUnprocessableEntity, Message: msg}
}

func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: msg, Cause: cause}
}

// KindOf reports the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
