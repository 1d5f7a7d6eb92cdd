package auth

import "errors"

var (
	// ErrInvalidCredentials covers an unknown login ID/email, a wrong
	// password, and a deactivated account. Callers must not be able to
	// tell which case occurred.
	ErrInvalidCredentials = errors.New("invalid login ID or password")

	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrUserNotFound        = errors.New("user not found")
)
