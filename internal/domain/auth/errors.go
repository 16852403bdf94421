package auth

import "errors"

var (
	ErrUnknownPhoneNumber  = errors.New("no active employee with this phone number")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
)
