package articles

import "errors"

var (
	// ErrNotFound is returned when no article matches the requested id
	ErrNotFound = errors.New("article not found")
	// ErrValidation marks rejected input
	ErrValidation = errors.New("validation failed")
	// ErrStorage marks a failed image upload or delete
	ErrStorage = errors.New("image storage failed")
	// ErrPersistence marks a failed database write
	ErrPersistence = errors.New("article persistence failed")
)
