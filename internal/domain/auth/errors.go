package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrGoogleEmailNotVerified = errors.New("google account email is not verified")
)
