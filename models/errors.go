package models

import "errors"

// Sentinel errors for the API error taxonomy. Controllers map these to HTTP
// status codes; anything unrecognized is treated as a store failure (500).
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrValidation        = errors.New("validation failed")
	ErrConflict          = errors.New("conflict")
)
