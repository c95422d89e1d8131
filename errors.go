package sqlpart

import (
	"errors"
	"fmt"
)

// Sentinel errors. All of them describe bad client input:
// they are deterministic and must not be retried.
var (
	// ErrNoUpdatableFields is returned by SetClause for an empty field list.
	ErrNoUpdatableFields = errors.New("sqlpart: no data to update")

	// ErrUnsupportedFilterKey is matched by *UnsupportedFilterKeyError.
	ErrUnsupportedFilterKey = errors.New("sqlpart: unsupported filter key")

	// ErrUnsupportedField is matched by *UnsupportedFieldError.
	ErrUnsupportedField = errors.New("sqlpart: unsupported field")

	// ErrDuplicateField is matched by *DuplicateFieldError.
	ErrDuplicateField = errors.New("sqlpart: duplicate field")

	// ErrInvalidFilterValue is matched by *InvalidFilterValueError.
	ErrInvalidFilterValue = errors.New("sqlpart: invalid filter value")
)

// UnsupportedFilterKeyError reports a filter key outside of a FilterSchema.
type UnsupportedFilterKeyError struct {
	Key string
}

func (e *UnsupportedFilterKeyError) Error() string {
	return fmt.Sprintf("sqlpart: unsupported filter key %q", e.Key)
}

// Is makes errors.Is(err, ErrUnsupportedFilterKey) work.
func (e *UnsupportedFilterKeyError) Is(err error) bool {
	return err == ErrUnsupportedFilterKey
}

// UnsupportedFieldError reports a field that can't be updated.
type UnsupportedFieldError struct {
	Name string
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("sqlpart: field %q can not be updated", e.Name)
}

// Is makes errors.Is(err, ErrUnsupportedField) work.
func (e *UnsupportedFieldError) Is(err error) bool {
	return err == ErrUnsupportedField
}

// DuplicateFieldError reports a field name given more than once.
type DuplicateFieldError struct {
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("sqlpart: field %q is set more than once", e.Name)
}

// Is makes errors.Is(err, ErrDuplicateField) work.
func (e *DuplicateFieldError) Is(err error) bool {
	return err == ErrDuplicateField
}

// InvalidFilterValueError reports a filter value of a wrong type.
type InvalidFilterValueError struct {
	Key  string
	Raw  string
	Want Kind
}

func (e *InvalidFilterValueError) Error() string {
	return fmt.Sprintf("sqlpart: filter %q expects %s, got %q", e.Key, e.Want, e.Raw)
}

// Is makes errors.Is(err, ErrInvalidFilterValue) work.
func (e *InvalidFilterValueError) Is(err error) bool {
	return err == ErrInvalidFilterValue
}

var clientErrors = []error{
	ErrNoUpdatableFields,
	ErrUnsupportedFilterKey,
	ErrUnsupportedField,
	ErrDuplicateField,
	ErrInvalidFilterValue,
}

// IsClientError reports whether err was caused by bad input
// and should be reported as such (for instance, with HTTP 400).
func IsClientError(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
