package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrMissingRefreshToken = errors.New("refresh token is required")
	ErrUserNotFound        = errors.New("user not found")
)
