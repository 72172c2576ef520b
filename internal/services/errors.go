package services

import "errors"

// Handlers map these with errors.Is; anything else becomes a 500.
var (
	ErrValidation         = errors.New("invalid request")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many attempts")
	ErrUnavailable        = errors.New("service unavailable")
)
