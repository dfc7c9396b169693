// Package common defines shared constants and sentinel errors used across
// the VetLig server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("could not validate credentials")

	// Registration conflicts. The boundary surfaces these messages as-is.
	ErrorEmailAlreadyRegistered = errors.New("email already registered")
	ErrorPhoneAlreadyRegistered = errors.New("phone number already registered")

	// Login failure. A single message regardless of whether the email was
	// unknown or the password wrong.
	ErrorIncorrectEmailOrPassword = errors.New("incorrect email or password")

	// Token lifecycle errors. The resolver collapses both into
	// ErrorUnauthorized before anything reaches a caller.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
