package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or malformed token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")

	// ErrEmployeeNotLinked means the authenticated user has no employee
	// record; attendance operations reject this before any state logic.
	ErrEmployeeNotLinked = errors.New("employee account not linked to this user")

	ErrInvalidResetCode = errors.New("invalid reset code")
	ErrResetCodeExpired = errors.New("reset code expired")
)
