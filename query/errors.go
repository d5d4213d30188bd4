package query

import (
	"errors"
	"fmt"
)

var (
	// ErrResolverRequired is returned when a vocabulary resolver is not provided.
	ErrResolverRequired = errors.New("vocabulary resolver required")

	// ErrInvalidQuery is matched by every validation failure of Build.
	ErrInvalidQuery = errors.New("invalid query")
)

// FieldError reports the query option that failed validation.
// It matches both ErrInvalidQuery and the wrapped core sentinel with errors.Is.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrInvalidQuery, e.Field, e.Err)
}

func (e *FieldError) Unwrap() []error {
	return []error{ErrInvalidQuery, e.Err}
}
