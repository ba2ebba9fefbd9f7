// Package apperr defines the tagged error kinds handlers return, so callers
// and tests branch on kind rather than on message text.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	// ValidationFailed covers missing or invalid fields.
	ValidationFailed Kind = iota
	// InvalidCredentials means login failed (unknown email or wrong password).
	InvalidCredentials
	// Unauthorized means a missing, malformed or expired bearer token.
	Unauthorized
	// ParseError means a malformed "lat,lon" coordinate string.
	ParseError
	// StorageConflict means a constraint violation, e.g. a duplicate email.
	StorageConflict
)

func (k Kind) String() string {
	switch k {
	case ValidationFailed:
		return "validation_failed"
	case InvalidCredentials:
		return "invalid_credentials"
	case Unauthorized:
		return "unauthorized"
	case ParseError:
		return "parse_error"
	case StorageConflict:
		return "storage_conflict"
	}
	return "unknown"
}

// HTTPStatus maps a kind to the status the front door sends. Everything is a
// 400 except the two auth cases.
func (k Kind) HTTPStatus() int {
	switch k {
	case InvalidCredentials, Unauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusBadRequest
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind of err, or ok=false if err carries none.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
