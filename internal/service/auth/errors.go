package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or the
	// signature doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid
	// (nbf claim in the future).
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrInvalidCredentials indicates a failed login. It intentionally
	// covers both unknown-email and wrong-password so responses cannot
	// leak which one occurred.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
