package openapi

import (
	"errors"
	"fmt"
)

var (
	// ErrRequired is reported for a required property left empty.
	ErrRequired = errors.New("openapi: value is required")
	// ErrInvalidValue is reported when text does not convert to the property type.
	ErrInvalidValue = errors.New("openapi: invalid value")
	// ErrNotAllowed is reported for a value outside the property enum.
	ErrNotAllowed = errors.New("openapi: value not allowed")
	// ErrOutOfRange is reported when a length or numeric bound is violated.
	ErrOutOfRange = errors.New("openapi: value out of range")
	// ErrOperationNotFound is returned when no operation has the requested ID.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoRequestBody is returned when an operation has no usable body schema.
	ErrNoRequestBody = errors.New("openapi: operation has no request body schema")
	// ErrNotObject is returned for body schemas without properties.
	ErrNotObject = errors.New("openapi: request body schema is not an object")
)

// FieldError ties a resolution error to the property that produced it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
