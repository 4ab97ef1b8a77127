package domain

import "errors"

// Sentinel errors shared by every layer. Repositories translate store
// failures into these; the API layer maps them onto HTTP statuses.
var (
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrValidation          = errors.New("validation failed")
	ErrStoreUnavailable    = errors.New("store unavailable")
)
