package form

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/goliatone/go-formview/pkg/layout"
)

// Form owns the bindings of one output model type and the rows that position
// them. Bindings and rows only ever accumulate.
type Form[M any] struct {
	bindings []binding[M]
	index    map[ID]int
	rows     [][]slot
	cfg      config
}

// slot is a stored row element: an arena position, or -1 for a spacer.
type slot struct {
	at     int
	weight int
}

// New constructs an empty form.
func New[M any](options ...Option) *Form[M] {
	cfg := config{layout: layout.DefaultConfig()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Form[M]{
		index: make(map[ID]int),
		cfg:   cfg,
	}
}

// BindInput registers an input and the function that applies its value to
// the model. It returns the new binding's ID; rows are not affected.
func BindInput[M, V any](f *Form[M], input Input[V], assign Assign[M, V]) ID {
	if isNil(input) {
		panic(ErrNilInput)
	}
	if assign == nil {
		panic(ErrNilAssign)
	}
	b := &inputBinding[M, V]{ident: newID(), input: input, assign: assign}
	f.register(b)
	return b.ident
}

// BindView registers a display-only view. It is laid out like any other
// element but never visited by Resolve.
func (f *Form[M]) BindView(view layout.Leaf) ID {
	b := &viewBinding[M]{ident: newID(), view: view}
	f.register(b)
	return b.ident
}

func (f *Form[M]) register(b binding[M]) {
	f.index[b.id()] = len(f.bindings)
	f.bindings = append(f.bindings, b)
}

// AddRow appends a row. Elements referencing unknown IDs are dropped, the rest
// of the row is kept; in strict mode the first unknown element panics.
func (f *Form[M]) AddRow(elements ...Element) {
	row := make([]slot, 0, len(elements))
	for i, el := range elements {
		if el.IsSpacer() {
			row = append(row, slot{at: -1, weight: el.Weight()})
			continue
		}
		at, ok := f.index[el.id]
		if !ok {
			if f.cfg.strict {
				panic(fmt.Errorf("%w: %s (row %d, element %d)", ErrUnknownElement, el.id, len(f.rows), i))
			}
			f.logger().Warn("dropping row element with unbound identifier",
				zap.Stringer("id", el.id),
				zap.Int("row", len(f.rows)),
				zap.Int("element", i))
			continue
		}
		row = append(row, slot{at: at, weight: el.Weight()})
	}
	f.rows = append(f.rows, row)
}

// Len reports the number of bindings.
func (f *Form[M]) Len() int {
	return len(f.bindings)
}

// Rows returns the stored rows as elements, in insertion order.
func (f *Form[M]) Rows() [][]Element {
	out := make([][]Element, 0, len(f.rows))
	for _, row := range f.rows {
		elements := make([]Element, 0, len(row))
		for _, s := range row {
			if s.at < 0 {
				elements = append(elements, Element{weight: s.weight, spacer: true})
				continue
			}
			elements = append(elements, Element{id: f.at(s.at).id(), weight: s.weight})
		}
		out = append(out, elements)
	}
	return out
}

// View returns the leaf bound under id.
func (f *Form[M]) View(id ID) (layout.Leaf, bool) {
	at, ok := f.index[id]
	if !ok {
		return nil, false
	}
	return f.at(at).leaf(), true
}

// IsInput reports whether id is bound to an input.
func (f *Form[M]) IsInput(id ID) bool {
	at, ok := f.index[id]
	return ok && f.at(at).isInput()
}

// FocusOrder lists the inputs placed in rows, in visitation order. An input
// placed more than once is listed at its first position.
func (f *Form[M]) FocusOrder() []Focusable {
	var out []Focusable
	seen := make(map[int]struct{})
	f.walk(func(at int, b binding[M]) {
		if !b.isInput() {
			return
		}
		if _, dup := seen[at]; dup {
			return
		}
		seen[at] = struct{}{}
		out = append(out, b.focusable())
	})
	return out
}

// LayoutRows converts the stored rows into layout input.
func (f *Form[M]) LayoutRows() []layout.Row {
	out := make([]layout.Row, 0, len(f.rows))
	for _, row := range f.rows {
		items := make(layout.Row, 0, len(row))
		for _, s := range row {
			if s.at < 0 {
				items = append(items, layout.Item{Weight: s.weight, Spacer: true})
				continue
			}
			items = append(items, layout.Item{Weight: s.weight, Leaf: f.at(s.at).leaf()})
		}
		out = append(out, items)
	}
	return out
}

// LayoutConfig reports the metrics Layout uses.
func (f *Form[M]) LayoutConfig() layout.Config {
	return f.cfg.layout
}

// Layout places every row on surface, detaching whatever a previous pass
// placed there.
func (f *Form[M]) Layout(surface layout.Surface) {
	if surface == nil {
		return
	}
	placements := layout.Apply(surface, f.LayoutRows(), f.cfg.layout)
	f.logger().Debug("form laid out",
		zap.Int("rows", len(f.rows)),
		zap.Int("placements", len(placements)),
		zap.Int("width", surface.Width()))
}

// walk visits every non-spacer slot in row then element order.
func (f *Form[M]) walk(fn func(at int, b binding[M])) {
	for _, row := range f.rows {
		for _, s := range row {
			if s.at < 0 {
				continue
			}
			fn(s.at, f.at(s.at))
		}
	}
}

func (f *Form[M]) at(i int) binding[M] {
	if i < 0 || i >= len(f.bindings) {
		panic(fmt.Sprintf("form: row slot %d outside binding arena of %d", i, len(f.bindings)))
	}
	return f.bindings[i]
}

func (f *Form[M]) logger() *zap.Logger {
	if f.cfg.logger != nil {
		return f.cfg.logger
	}
	return Logger()
}

// isNil also catches typed nil pointers stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
