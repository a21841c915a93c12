// Package common defines shared constants and sentinel errors used across
// the server, its repositories and the admin tooling. Callers should use
// errors.Is to match these values.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrorNotFound         = errors.New("not found")
	ErrorConflict         = errors.New("conflict")
	ErrorInvalidReference = errors.New("invalid reference")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation errors. Wrap with a human-readable message:
	//
	//	fmt.Errorf("%w: title is required", common.ErrorValidation)
	ErrorValidation = errors.New("validation error")

	// Auth errors.
	ErrAuthorizationMissing = errors.New("authorization header is missing")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
	ErrAccountDisabled      = errors.New("account disabled")

	// Configuration errors.
	ErrMissingSecret = errors.New("signing secret is not configured")
)

// Detail returns the message err carries after the sentinel it wraps, as
// produced by fmt.Errorf("%w: ...", sentinel). It returns "" when err does
// not wrap sentinel that way.
func Detail(err, sentinel error) string {
	if err == nil || !errors.Is(err, sentinel) {
		return ""
	}
	prefix := sentinel.Error() + ": "
	msg := err.Error()
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return ""
}
