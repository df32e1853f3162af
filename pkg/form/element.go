package form

import (
	"fmt"

	"github.com/google/uuid"
)

// ID identifies a binding. IDs are random UUIDs, so they are unique across
// forms and never reused.
type ID struct {
	uuid uuid.UUID
}

func newID() ID {
	return ID{uuid: uuid.New()}
}

// String renders the UUID.
func (id ID) String() string {
	return id.uuid.String()
}

// IsZero reports whether id is the zero ID, which no binding ever has.
func (id ID) IsZero() bool {
	return id.uuid == uuid.Nil
}

// Element positions a binding, or blank space, inside a row. The zero
// Element is a spacer of weight 1. An element built by Elem from the zero ID
// is not a spacer; AddRow treats it as unknown.
type Element struct {
	id     ID
	weight int
	spacer bool
}

// Elem references the binding id with the given layout weight.
func Elem(id ID, weight int) Element {
	if weight < 1 {
		panic(fmt.Errorf("%w (got %d)", ErrInvalidWeight, weight))
	}
	return Element{id: id, weight: weight}
}

// Elems references each id with weight 1.
func Elems(ids ...ID) []Element {
	out := make([]Element, 0, len(ids))
	for _, id := range ids {
		out = append(out, Element{id: id, weight: 1})
	}
	return out
}

// Spacer reserves blank space of the given weight.
func Spacer(weight int) Element {
	if weight < 1 {
		panic(fmt.Errorf("%w (got %d)", ErrInvalidWeight, weight))
	}
	return Element{weight: weight, spacer: true}
}

// ID returns the referenced binding. ok is false for spacers.
func (e Element) ID() (ID, bool) {
	if e.IsSpacer() {
		return ID{}, false
	}
	return e.id, true
}

// Weight reports the layout weight.
func (e Element) Weight() int {
	if e.weight < 1 {
		return 1
	}
	return e.weight
}

// IsSpacer reports whether the element holds no binding.
func (e Element) IsSpacer() bool {
	return e.spacer || (e.weight == 0 && e.id.IsZero())
}
