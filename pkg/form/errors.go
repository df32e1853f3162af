package form

import "errors"

var (
	// ErrUnknownElement flags a row element whose ID was never bound. In strict
	// mode AddRow panics with it; otherwise the element is dropped and logged.
	ErrUnknownElement = errors.New("form: element references an unbound identifier")
	// ErrInvalidWeight is the panic value of element constructors given a
	// weight below 1.
	ErrInvalidWeight = errors.New("form: element weight must be at least 1")
	// ErrNilModel is reported by Resolve when no model is supplied.
	ErrNilModel = errors.New("form: model is nil")
	// ErrNilInput is the panic value of BindInput given a nil input, including
	// a typed nil pointer.
	ErrNilInput = errors.New("form: input is nil")
	// ErrNilAssign is the panic value of BindInput given a nil assign function.
	ErrNilAssign = errors.New("form: assign function is nil")
)
