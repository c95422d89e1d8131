package models

import (
	"errors"
	"fmt"

	"github.com/jobly/sqlpart"
)

var (
	// ErrNotFound is matched by *NotFoundError.
	ErrNotFound = errors.New("models: record not found")

	// ErrDuplicate is returned on an attempt to create a record
	// with a key that is already taken.
	ErrDuplicate = errors.New("models: duplicate record")

	// ErrInvalidRange is returned for a filter with a lower bound
	// greater than its upper bound.
	ErrInvalidRange = errors.New("models: invalid filter range")
)

// NotFoundError reports a missing record.
type NotFoundError struct {
	Label string
	ID    interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("models: no %s: %v", e.Label, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) work.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

func notFound(label string, id interface{}) error {
	return &NotFoundError{Label: label, ID: id}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsClientError reports whether err was caused by bad input.
func IsClientError(err error) bool {
	return sqlpart.IsClientError(err) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrInvalidRange)
}
