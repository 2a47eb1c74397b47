// Package apierr defines the domain error taxonomy shared by all services.
// Every domain failure is one of four kinds, each with a fixed HTTP status;
// the HTTP layer translates the kind, the message passes through verbatim.
package apierr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	BadRequest Kind = iota
	Unauthorized
	NotFound
	Conflict
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case BadRequest:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (k Kind) String() string {
	switch k {
	case BadRequest:
		return "bad request"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not found"
	case Conflict:
		return "conflict"
	}
	return "unknown"
}

// Error is a tagged domain error: a kind plus a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func BadRequestf(message string) *Error {
	return &Error{Kind: BadRequest, Message: message}
}

func Unauthorizedf(message string) *Error {
	return &Error{Kind: Unauthorized, Message: message}
}

func NotFoundf(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

func Conflictf(message string) *Error {
	return &Error{Kind: Conflict, Message: message}
}

// From extracts an *Error from err's chain. The boolean is false for
// errors that are not part of the taxonomy (the HTTP layer maps those
// to a 500).
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is reports whether err is a taxonomy error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := From(err)
	return ok && e.Kind == kind
}
