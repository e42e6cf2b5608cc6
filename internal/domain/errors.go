package domain

import "errors"

// Error taxonomy shared by repositories, services and the HTTP layer.
// Lower layers wrap these with %w so callers can match with errors.Is.
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrNotFound           = errors.New("not found")
	ErrIntegrityViolation = errors.New("integrity violation")
	ErrPersistence        = errors.New("persistence error")
	ErrExternalService    = errors.New("external service error")
	ErrInvalidInput       = errors.New("invalid input")
)
