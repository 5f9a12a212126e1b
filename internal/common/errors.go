// Package common defines shared constants and sentinel errors used across the
// welfare client. Callers should match these values with errors.Is.
package common

import "errors"

var (
	// Connectivity errors.
	ErrOffline = errors.New("no internet connection")

	// Auth errors.
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNoRefreshToken = errors.New("no refresh token")

	// Local storage errors.
	ErrMalformedSession = errors.New("malformed persisted session")
)
