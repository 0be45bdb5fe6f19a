package store

import (
	"errors"
	"fmt"
)

// StorageError represents a failure inside the scenario store.
//
// Storage errors carry a category code so the shell can distinguish a fatal
// initialization failure from a per-call read/write failure, plus the
// operation that failed and the underlying cause. At the process boundary
// they are rendered as strings; the codes exist for the shell's own logic
// and for tests.
type StorageError struct {
	// Code identifies the error category.
	Code StorageErrorCode

	// Op names the failed operation (e.g. "save scenario").
	Op string

	// Err is the underlying cause.
	Err error
}

// StorageErrorCode categorizes storage errors.
type StorageErrorCode string

const (
	// ErrCodeInit indicates the data directory or database could not be
	// prepared. Fatal: the store never becomes usable.
	ErrCodeInit StorageErrorCode = "STORAGE_INIT"

	// ErrCodeRead indicates an I/O failure while reading scenarios.
	// Local to the call; not retried.
	ErrCodeRead StorageErrorCode = "STORAGE_READ"

	// ErrCodeWrite indicates an I/O failure while writing or deleting.
	// Local to the call; not retried.
	ErrCodeWrite StorageErrorCode = "STORAGE_WRITE"
)

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsInitError returns true if the error is a storage initialization error.
// Uses errors.As to handle wrapped errors.
func IsInitError(err error) bool {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Code == ErrCodeInit
	}
	return false
}

// IsReadError returns true if the error is a storage read error.
// Uses errors.As to handle wrapped errors.
func IsReadError(err error) bool {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Code == ErrCodeRead
	}
	return false
}

// IsWriteError returns true if the error is a storage write error.
// Uses errors.As to handle wrapped errors.
func IsWriteError(err error) bool {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Code == ErrCodeWrite
	}
	return false
}

// initError wraps err as a fatal initialization failure.
func initError(op string, err error) error {
	return &StorageError{Code: ErrCodeInit, Op: op, Err: err}
}

// readError wraps err as a per-call read failure.
func readError(op string, err error) error {
	return &StorageError{Code: ErrCodeRead, Op: op, Err: err}
}

// writeError wraps err as a per-call write failure.
func writeError(op string, err error) error {
	return &StorageError{Code: ErrCodeWrite, Op: op, Err: err}
}
