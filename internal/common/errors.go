// Package common contains shared constants and sentinel errors used across
// console client components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// Session store errors.
	ErrLoginInProgress   = errors.New("login already in progress")
	ErrStaleCompletion   = errors.New("stale completion")
	ErrInvalidTransition = errors.New("invalid state transition")

	// Validation errors (caught before any network call).
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyPassword    = errors.New("password must not be empty")
	ErrInvalidCode      = errors.New("please enter verification code")
	ErrWeakPassword     = errors.New("password must be at least 8 characters and include a letter, a digit and a special character")
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Reset flow errors.
	ErrSessionExpired = errors.New("session expired, please restart the password reset")
	ErrResendCooldown = errors.New("resend not available yet")
)
