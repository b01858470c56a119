package service

import "errors"

var (
	// ErrBadCredentials is the only authentication failure a caller sees.
	// It never tells an unknown login apart from a wrong secret.
	ErrBadCredentials = errors.New("bad credentials")

	// ErrAuthenticationUnavailable means the account directory could not be
	// consulted, so no verdict was reached.
	ErrAuthenticationUnavailable = errors.New("authentication is temporarily unavailable")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
