package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no session exists (not logged in)
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrOptionsNotFound indicates that an option list was never cached
	ErrOptionsNotFound = errors.New("cached options not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
