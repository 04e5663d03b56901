package domain

import "errors"

// Sentinel errors shared by repos, services and handlers. Handlers map these
// to HTTP statuses; anything else is an internal failure and is logged but
// surfaced generically.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("already exists")
	ErrValidation         = errors.New("invalid input")
	ErrBadCredentials     = errors.New("invalid email or password")
	ErrAlreadyInitialized = errors.New("already initialized")
	ErrGateway            = errors.New("payment gateway error")
	ErrPersistence        = errors.New("persistence error")
)
