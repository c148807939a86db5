package repositories

import "errors"

// Typed failures surfaced by repositories. Handlers map these onto HTTP
// status codes; anything else is treated as unexpected.
var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)
