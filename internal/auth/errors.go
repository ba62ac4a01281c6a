package auth

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/templat/internal/pkg/message"
)

var (
	ErrMissingToken       = errors.New("auth: missing bearer token")
	ErrInvalidScheme      = errors.New("auth: invalid authentication scheme")
	ErrInvalidToken       = errors.New("auth: invalid or expired token")
	ErrForbidden          = errors.New("auth: not enough permissions")
	ErrServiceUnavailable = errors.New("auth: authentication service unavailable")
	ErrNoIdentity         = errors.New("auth: no identity in context")
	ErrUnknownRole        = errors.New("auth: unknown role")
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrUserExists         = errors.New("auth: user already exists")
	ErrPasswordTooLong    = errors.New("auth: password too long")
)

// Error is an authentication or authorization failure with the HTTP status and
// client-facing detail it should be reported with.
type Error struct {
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Detail
	}
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusOf maps an error from this package to its HTTP status code.
func StatusOf(err error) int {
	var authErr *Error
	if errors.As(err, &authErr) && authErr.Status != 0 {
		return authErr.Status
	}

	switch {
	case errors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrInvalidScheme),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrNoIdentity),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// DetailOf returns the client-facing message for err.
func DetailOf(err error) string {
	var authErr *Error
	if errors.As(err, &authErr) && authErr.Detail != "" {
		return authErr.Detail
	}

	switch StatusOf(err) {
	case http.StatusServiceUnavailable:
		return message.ServiceUnavailable
	case http.StatusForbidden:
		return message.Forbidden
	case http.StatusUnauthorized:
		return message.Unauthorized
	default:
		return message.ServerError
	}
}
