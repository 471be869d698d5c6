package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidQuestionIndex = errors.New("invalid question index")
	ErrSessionCompleted     = errors.New("interview session already completed")
	ErrVersionConflict      = errors.New("session was modified concurrently")
)

// GenerationError reports that the completion gateway failed or returned
// output that could not be used.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func NewGenerationError(op string, err error) error {
	return &GenerationError{Op: op, Err: err}
}

// StorageError reports a failed persistence operation. Repositories never
// substitute placeholder data for a failed read or write.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
