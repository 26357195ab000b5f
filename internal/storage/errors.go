package storage

import "errors"

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicate is returned when attempting to create a resource that already exists.
	ErrDuplicate = errors.New("resource already exists")

	// ErrNoCredential is returned when no administrator credential has been seeded.
	ErrNoCredential = errors.New("no administrator credential configured")
)
