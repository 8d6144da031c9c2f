package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid nip or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
)
