package models

import "errors"

// Sentinel errors shared across layers. Callers match with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidInput       = errors.New("invalid input")
)
