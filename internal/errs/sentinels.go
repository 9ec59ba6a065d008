// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across repository/service layers.
var (
	// ErrNotFound indicates the requested note does not exist.
	ErrNotFound = errors.New("note not found")

	// ErrStorageUnavailable indicates the requested backend is not implemented
	// or reachable. Use StorageUnavailable to attach the backend tag.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// StorageUnavailableError reports which backend could not serve a request.
// It matches ErrStorageUnavailable via errors.Is.
type StorageUnavailableError struct {
	Storage string
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("%s storage is not available yet", e.Storage)
}

func (e *StorageUnavailableError) Unwrap() error { return ErrStorageUnavailable }

// StorageUnavailable builds a StorageUnavailableError for the given backend tag.
func StorageUnavailable(storage string) error {
	return &StorageUnavailableError{Storage: storage}
}
