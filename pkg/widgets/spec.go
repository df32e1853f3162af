// Package widgets describes input widgets independently of where they are
// drawn. Schema-driven builders describe each field with a Spec, pick a Kind
// through a Registry and ask a Factory for the concrete input.
package widgets

import (
	"github.com/goliatone/go-formview/pkg/form"
	"github.com/goliatone/go-formview/pkg/layout"
)

// Kind names a widget family.
type Kind string

// Built-in widget kinds.
const (
	KindText    Kind = "text"
	KindSecret  Kind = "secret"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
)

// Field types understood by the built-in matchers. They follow JSON schema.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// Spec describes one field to a Factory.
type Spec struct {
	Name        string
	Label       string
	Help        string
	Placeholder string
	Default     string
	Type        string
	Format      string
	Required    bool
	// Hints carries presentation overrides. Hints["widget"] forces a Kind.
	Hints map[string]string
}

// Factory creates the widgets of one presentation layer.
type Factory interface {
	Text(spec Spec) form.Input[string]
	Secret(spec Spec) form.Input[string]
	Integer(spec Spec) form.Input[int64]
	Number(spec Spec) form.Input[float64]
	Heading(text string) layout.Leaf
}
