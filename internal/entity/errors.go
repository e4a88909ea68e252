package entity

import "errors"

// Sentinel errors shared across repositories and handlers. Handlers translate
// these into HTTP status codes; anything else is an internal error.
var (
	ErrNotFound               = errors.New("not found")
	ErrUnauthorized           = errors.New("Unauthorized")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadySubscribed = errors.New("Email already subscribed")
	ErrEmailAlreadyExists     = errors.New("Email already registered")
	ErrSlugAlreadyExists      = errors.New("Slug already in use")
	ErrKeyAlreadyExists       = errors.New("Translation key already in use")
)
