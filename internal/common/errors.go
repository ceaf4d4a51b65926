// Package common defines shared constants and sentinel errors used across
// client and server layers of TokenKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// Registration and login errors.
	ErrDuplicateUsername = errors.New("user already exists")
	ErrUnknownUser       = errors.New("user does not exist")
	ErrBadPassword       = errors.New("wrong password")

	// Auth gate errors.
	ErrorUnauthorized = errors.New("unauthorized")

	// Token lifecycle errors.
	ErrTokenAlreadyExists = errors.New("token already exists")
	ErrNoToken            = errors.New("token does not exist")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)
