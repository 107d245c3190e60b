package middleware

import "errors"

var (
	errInvalidAuthHeader = errors.New("invalid authorization header format")
	errInvalidToken      = errors.New("invalid or expired token")
)
