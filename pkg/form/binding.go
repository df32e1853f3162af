package form

import "github.com/goliatone/go-formview/pkg/layout"

// Focusable is the focus half of the input contract.
type Focusable interface {
	Focus()
	Blur()
	Focused() bool
}

// Input is an interactive widget producing values of type V. Output reports
// ok == false when the current text cannot be converted to V.
type Input[V any] interface {
	layout.Leaf
	Focusable
	Text() string
	Output() (value V, ok bool)
}

// Assign applies an input's value to the model. ok is false when the input
// holds no convertible value; it is up to the function to turn that into a
// failure. The returned error is collected whether or not success is true.
type Assign[M, V any] func(model *M, value V, ok bool) (success bool, err error)

// binding erases the input type; only model-shaped operations cross it.
type binding[M any] interface {
	id() ID
	isInput() bool
	leaf() layout.Leaf
	focusable() Focusable
	resolve(model *M) (bool, error)
}

type inputBinding[M, V any] struct {
	ident  ID
	input  Input[V]
	assign Assign[M, V]
}

func (b *inputBinding[M, V]) id() ID               { return b.ident }
func (b *inputBinding[M, V]) isInput() bool        { return true }
func (b *inputBinding[M, V]) leaf() layout.Leaf    { return b.input }
func (b *inputBinding[M, V]) focusable() Focusable { return b.input }

func (b *inputBinding[M, V]) resolve(model *M) (bool, error) {
	value, ok := b.input.Output()
	return b.assign(model, value, ok)
}

type viewBinding[M any] struct {
	ident ID
	view  layout.Leaf
}

func (b *viewBinding[M]) id() ID               { return b.ident }
func (b *viewBinding[M]) isInput() bool        { return false }
func (b *viewBinding[M]) leaf() layout.Leaf    { return b.view }
func (b *viewBinding[M]) focusable() Focusable { return nil }

func (b *viewBinding[M]) resolve(*M) (bool, error) {
	return true, nil
}

// Set adapts a plain setter. A value-less read reports failure without an
// error, leaving the model untouched.
func Set[M, V any](set func(model *M, value V)) Assign[M, V] {
	return func(model *M, value V, ok bool) (bool, error) {
		if !ok {
			return false, nil
		}
		set(model, value)
		return true, nil
	}
}

// Validate is Set with a single check. When check fails the model is left
// untouched and the check's error is reported.
func Validate[M, V any](set func(model *M, value V), check func(value V) error) Assign[M, V] {
	return func(model *M, value V, ok bool) (bool, error) {
		if !ok {
			return false, nil
		}
		if check != nil {
			if err := check(value); err != nil {
				return false, err
			}
		}
		set(model, value)
		return true, nil
	}
}
