package auth

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrTokenInvalid      = errors.New("invalid or expired token")
	ErrNoGoogleToken     = errors.New("user has no valid Google credentials")
	ErrCallbackCodeEmpty = errors.New("authorization code not found")
)
