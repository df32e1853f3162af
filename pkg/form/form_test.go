package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-formview/pkg/convert"
	"github.com/goliatone/go-formview/pkg/layout"
)

type person struct {
	Firstname string
	Lastname  string
	Age       int
}

// field is a minimal Input backed by the convert package.
type field[V convert.Value] struct {
	text    string
	focused bool
}

func newField[V convert.Value](text string) *field[V] { return &field[V]{text: text} }

func (f *field[V]) IntrinsicHeight() int { return 1 }
func (f *field[V]) Focus()               { f.focused = true }
func (f *field[V]) Blur()                { f.focused = false }
func (f *field[V]) Focused() bool        { return f.focused }
func (f *field[V]) Text() string         { return f.text }
func (f *field[V]) Output() (V, bool)    { return convert.Parse[V](f.text) }
func (f *field[V]) SetOutput(v V)        { f.text = convert.Format(v) }

type title struct{ text string }

func (t *title) IntrinsicHeight() int { return 2 }

var errTooShort = errors.New("tooShort")

func setFirstname(p *person, v string) { p.Firstname = v }
func setLastname(p *person, v string)  { p.Lastname = v }
func setAge(p *person, v int)          { p.Age = v }

func TestResolve_SingleField(t *testing.T) {
	f := New[person](WithStrict(true))
	input := newField[string]("")
	id := BindInput(f, input, Set(setFirstname))
	f.AddRow(Elems(id)...)

	input.SetOutput("John")
	p := person{}
	res := f.Resolve(&p)

	if diff := cmp.Diff(person{Firstname: "John"}, p); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
	if !res.OK || len(res.Errors) != 0 || res.Visited != 1 {
		t.Fatalf("unexpected resolution: %+v", res)
	}
	if res.Err() != nil {
		t.Fatalf("expected nil joined error, got %v", res.Err())
	}
}

func TestResolve_ValidationFailure(t *testing.T) {
	f := New[person](WithStrict(true))
	input := newField[string]("John")
	id := BindInput(f, input, Validate(setFirstname, func(v string) error {
		if len(v) < 10 {
			return errTooShort
		}
		return nil
	}))
	f.AddRow(Elem(id, 1))

	p := person{}
	res := f.Resolve(&p)

	if res.OK {
		t.Fatalf("expected failure")
	}
	if diff := cmp.Diff([]error{errTooShort}, res.Errors, cmpopts.EquateErrors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if !res.Failed(id) || len(res.Failures) != 1 || !errors.Is(res.Failures[0].Err, errTooShort) {
		t.Fatalf("failure not attributed to the binding: %+v", res.Failures)
	}
	if p.Firstname != "" {
		t.Fatalf("failed check must not assign, got %q", p.Firstname)
	}
	if !errors.Is(res.Err(), errTooShort) {
		t.Fatalf("joined error should wrap tooShort, got %v", res.Err())
	}
}

func TestResolve_RowsWithSpacers(t *testing.T) {
	f := New[person](WithStrict(true))
	first := newField[string]("John")
	last := newField[string]("Smith")
	age := newField[int]("26")

	firstID := BindInput(f, first, Set(setFirstname))
	lastID := BindInput(f, last, Set(setLastname))
	ageID := BindInput(f, age, Set(setAge))

	f.AddRow(Elem(firstID, 2), Spacer(1), Elem(lastID, 2))
	f.AddRow(Elems(ageID)...)

	p := person{}
	res := f.Resolve(&p)

	if diff := cmp.Diff(person{Firstname: "John", Lastname: "Smith", Age: 26}, p); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
	if !res.OK || res.Visited != 3 {
		t.Fatalf("unexpected resolution: %+v", res)
	}
}

func TestResolve_ParseFailureLeftToAssign(t *testing.T) {
	f := New[person](WithStrict(true))
	age := newField[int]("twenty-six")
	id := BindInput(f, age, Set(setAge))
	f.AddRow(Elems(id)...)

	p := person{Age: 1}
	res := f.Resolve(&p)

	if res.OK {
		t.Fatalf("value-less read must not count as success")
	}
	if len(res.Errors) != 0 {
		t.Fatalf("engine must not fabricate errors, got %v", res.Errors)
	}
	if p.Age != 1 {
		t.Fatalf("model should be untouched, got %d", p.Age)
	}

	var sawMissing bool
	f2 := New[person](WithStrict(true))
	id2 := BindInput(f2, age, func(p *person, v int, ok bool) (bool, error) {
		sawMissing = !ok
		return true, nil
	})
	f2.AddRow(Elems(id2)...)
	if res := f2.Resolve(&p); !res.OK || !sawMissing {
		t.Fatalf("assign should see the missing value and decide, res=%+v saw=%v", res, sawMissing)
	}
}

func TestResolve_ErrorOrderAndPartialApplication(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	errWarn := errors.New("warning")

	f := New[person](WithStrict(true))
	first := BindInput(f, newField[string]("John"), func(p *person, v string, ok bool) (bool, error) {
		p.Firstname = v
		return true, errWarn
	})
	bad := BindInput(f, newField[string]("x"), func(*person, string, bool) (bool, error) {
		return false, errA
	})
	last := BindInput(f, newField[string]("Smith"), Set(setLastname))
	worse := BindInput(f, newField[int]("3"), func(*person, int, bool) (bool, error) {
		return false, errB
	})

	f.AddRow(Elems(bad, first)...)
	f.AddRow(Elem(worse, 1), Elem(last, 1))

	p := person{}
	res := f.Resolve(&p)

	if res.OK {
		t.Fatalf("expected failure")
	}
	if diff := cmp.Diff([]error{errA, errWarn, errB}, res.Errors, cmpopts.EquateErrors()); diff != "" {
		t.Fatalf("errors should follow visitation order (-want +got):\n%s", diff)
	}
	gotFailed := []ID{res.Failures[0].ID, res.Failures[1].ID}
	if gotFailed[0] != bad || gotFailed[1] != worse {
		t.Fatalf("failures out of order: %+v", res.Failures)
	}
	if p.Firstname != "John" || p.Lastname != "Smith" {
		t.Fatalf("successful assignments must be kept, got %+v", p)
	}
}

func TestResolve_LastWriteWins(t *testing.T) {
	f := New[person](WithStrict(true))
	a := BindInput(f, newField[string]("first"), Set(setFirstname))
	b := BindInput(f, newField[string]("second"), Set(setFirstname))
	f.AddRow(Elems(b)...)
	f.AddRow(Elems(a)...)

	p := person{}
	f.Resolve(&p)
	if p.Firstname != "first" {
		t.Fatalf("later row should win, got %q", p.Firstname)
	}
}

func TestResolve_ViewsAndSpacersNotVisited(t *testing.T) {
	f := New[person](WithStrict(true))
	head := f.BindView(&title{"Person"})
	input := newField[string]("John")
	id := BindInput(f, input, Set(setFirstname))

	f.AddRow(Elems(head)...)
	f.AddRow(Spacer(1))
	f.AddRow(Elem(id, 1), Spacer(3))

	res := f.Resolve(&person{})
	if res.Visited != 1 || !res.OK || len(res.Errors) != 0 {
		t.Fatalf("only the input should be visited: %+v", res)
	}
	if f.IsInput(head) || !f.IsInput(id) {
		t.Fatalf("IsInput mismatch")
	}
}

func TestResolve_Idempotent(t *testing.T) {
	f := New[person](WithStrict(true))
	first := BindInput(f, newField[string]("Jo"), Validate(setFirstname, func(v string) error {
		if len(v) < 3 {
			return errTooShort
		}
		return nil
	}))
	age := BindInput(f, newField[int]("40"), Set(setAge))
	f.AddRow(Elems(first, age)...)

	var p1, p2 person
	r1 := f.Resolve(&p1)
	r2 := f.Resolve(&p2)

	if diff := cmp.Diff(p1, p2); diff != "" {
		t.Fatalf("models differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(r1, r2, cmpopts.EquateErrors(), cmp.AllowUnexported(ID{})); diff != "" {
		t.Fatalf("resolutions differ (-first +second):\n%s", diff)
	}
	if len(f.Rows()) != 1 || f.Len() != 2 {
		t.Fatalf("resolve must not modify the form")
	}
}

func TestResolve_NilModel(t *testing.T) {
	f := New[person]()
	res := f.Resolve(nil)
	if res.OK || !errors.Is(res.Err(), ErrNilModel) {
		t.Fatalf("expected ErrNilModel, got %+v", res)
	}
}

func TestResolve_DuplicatePlacementVisitsTwice(t *testing.T) {
	f := New[person](WithStrict(true))
	calls := 0
	id := BindInput(f, newField[int]("7"), func(p *person, v int, ok bool) (bool, error) {
		calls++
		p.Age += v
		return ok, nil
	})
	f.AddRow(Elems(id)...)
	f.AddRow(Elems(id)...)

	p := person{}
	res := f.Resolve(&p)
	if calls != 2 || res.Visited != 2 || p.Age != 14 {
		t.Fatalf("duplicated element should resolve at each position: calls=%d age=%d", calls, p.Age)
	}
	if got := len(f.FocusOrder()); got != 1 {
		t.Fatalf("focus order should list the input once, got %d", got)
	}
}

func TestAddRow_DropsUnknownElements(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	f := New[person](WithLogger(zap.New(core)))

	other := New[person]()
	foreign := BindInput(other, newField[string](""), Set(setFirstname))

	known := BindInput(f, newField[string]("John"), Set(setFirstname))
	f.AddRow(Elems(foreign)...)
	f.AddRow(Elem(foreign, 1), Elem(known, 2), Spacer(1))

	rows := f.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows are appended even when emptied, got %d", len(rows))
	}
	if len(rows[0]) != 0 {
		t.Fatalf("row with only an unknown element should store nothing, got %d", len(rows[0]))
	}
	if len(rows[1]) != 2 {
		t.Fatalf("only the unknown element should be dropped, got %d elements", len(rows[1]))
	}
	if id, ok := rows[1][0].ID(); !ok || id != known || rows[1][0].Weight() != 2 {
		t.Fatalf("kept element mismatch: %+v", rows[1][0])
	}
	if !rows[1][1].IsSpacer() {
		t.Fatalf("spacer should be kept")
	}
	if logs.Len() != 2 {
		t.Fatalf("expected a warning per dropped element, got %d", logs.Len())
	}

	p := person{}
	if res := f.Resolve(&p); !res.OK || p.Firstname != "John" {
		t.Fatalf("remaining binding should resolve: %+v", res)
	}
}

func TestAddRow_StrictPanics(t *testing.T) {
	f := New[person](WithStrict(true))
	other := New[person]()
	foreign := BindInput(other, newField[string](""), Set(setFirstname))

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownElement) {
			t.Fatalf("expected ErrUnknownElement panic, got %v", r)
		}
	}()
	f.AddRow(Elems(foreign)...)
}

func TestAddRow_ZeroIDIsUnknown(t *testing.T) {
	if Elem(ID{}, 3).IsSpacer() || Elems(ID{})[0].IsSpacer() {
		t.Fatalf("elements built from the zero ID must not be spacers")
	}

	core, logs := observer.New(zapcore.WarnLevel)
	f := New[person](WithLogger(zap.New(core)))
	f.AddRow(Elem(ID{}, 3), Spacer(1))
	rows := f.Rows()
	if len(rows[0]) != 1 || !rows[0][0].IsSpacer() || rows[0][0].Weight() != 1 {
		t.Fatalf("zero ID element should be dropped, got %+v", rows[0])
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one warning, got %d", logs.Len())
	}

	strict := New[person](WithStrict(true))
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownElement) {
			t.Fatalf("expected ErrUnknownElement panic, got %v", r)
		}
	}()
	strict.AddRow(Elem(ID{}, 1))
}

func TestBindInput_TypedNilPanics(t *testing.T) {
	f := New[person]()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNilInput) {
			t.Fatalf("expected ErrNilInput panic, got %v", r)
		}
	}()
	var in *field[string]
	BindInput(f, in, Set(setFirstname))
}

func TestElement_Constructors(t *testing.T) {
	id := newID()
	if got := Elem(id, 3); got.Weight() != 3 || got.IsSpacer() {
		t.Fatalf("unexpected element: %+v", got)
	}
	if s := Spacer(2); !s.IsSpacer() || s.Weight() != 2 {
		t.Fatalf("unexpected spacer: %+v", s)
	}
	var zero Element
	if !zero.IsSpacer() || zero.Weight() != 1 {
		t.Fatalf("zero element should be a weight-1 spacer")
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidWeight) {
			t.Fatalf("expected ErrInvalidWeight panic, got %v", r)
		}
	}()
	Elem(id, 0)
}

func TestBind_UniqueIDs(t *testing.T) {
	f := New[person]()
	seen := make(map[ID]struct{})
	for i := 0; i < 50; i++ {
		id := BindInput(f, newField[string](""), Set(setFirstname))
		if id.IsZero() {
			t.Fatalf("binding got the zero ID")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("identifier reused: %s", id)
		}
		seen[id] = struct{}{}
	}
	if f.Len() != 50 {
		t.Fatalf("expected 50 bindings, got %d", f.Len())
	}
}

type surface struct {
	width  int
	placed map[layout.Leaf]layout.Rect
}

func (s *surface) Width() int                             { return s.width }
func (s *surface) Reset()                                 { s.placed = make(map[layout.Leaf]layout.Rect) }
func (s *surface) Place(l layout.Leaf, frame layout.Rect) { s.placed[l] = frame }

func TestLayout_UsesRowsAndWeights(t *testing.T) {
	cfg := layout.Config{HorizontalSpacing: 0, VerticalSpacing: 1, DefaultSpacerHeight: 3}
	f := New[person](WithStrict(true), WithLayoutConfig(cfg))
	head := &title{"Person"}
	first := newField[string]("")
	last := newField[string]("")

	headID := f.BindView(head)
	firstID := BindInput(f, first, Set(setFirstname))
	lastID := BindInput(f, last, Set(setLastname))

	f.AddRow(Elems(headID)...)
	f.AddRow(Spacer(1))
	f.AddRow(Elem(firstID, 1), Elem(lastID, 3))

	s := &surface{width: 80}
	f.Layout(s)

	want := map[layout.Leaf]layout.Rect{
		head:  {X: 0, Y: 0, Width: 80, Height: 2},
		first: {X: 0, Y: 7, Width: 20, Height: 1},
		last:  {X: 20, Y: 7, Width: 60, Height: 1},
	}
	if diff := cmp.Diff(want, s.placed, cmp.AllowUnexported(title{}, field[string]{})); diff != "" {
		t.Fatalf("placements mismatch (-want +got):\n%s", diff)
	}

	view, ok := f.View(firstID)
	if !ok || view != layout.Leaf(first) {
		t.Fatalf("View should return the bound input")
	}

	f.AddRow(Elems(headID)...)
	f.Layout(s)
	if len(s.placed) != 3 {
		t.Fatalf("relayout should reset and place again, got %d", len(s.placed))
	}
}

func TestFocusOrder(t *testing.T) {
	f := New[person](WithStrict(true))
	a := newField[string]("")
	b := newField[int]("")
	head := f.BindView(&title{})
	aID := BindInput(f, a, Set(setFirstname))
	bID := BindInput(f, b, Set(setAge))
	unplaced := BindInput(f, newField[string](""), Set(setLastname))
	_ = unplaced

	f.AddRow(Elems(head)...)
	f.AddRow(Elems(bID, aID)...)

	order := f.FocusOrder()
	if len(order) != 2 || order[0] != Focusable(b) || order[1] != Focusable(a) {
		t.Fatalf("unexpected focus order: %v", order)
	}
}

func TestFocusNextAndPrev(t *testing.T) {
	a, b, c := newField[string](""), newField[string](""), newField[string]("")
	order := []Focusable{a, b, c}

	if got := Focused(order); got != -1 {
		t.Fatalf("nothing should be focused, got %d", got)
	}
	if got := FocusNext(order); got != 0 || !a.Focused() {
		t.Fatalf("first FocusNext should focus index 0, got %d", got)
	}
	FocusNext(order)
	if got := FocusNext(order); got != 2 || !c.Focused() || a.Focused() || b.Focused() {
		t.Fatalf("focus should be on c alone, got %d", got)
	}
	if got := FocusNext(order); got != 0 {
		t.Fatalf("FocusNext should wrap, got %d", got)
	}
	if got := FocusPrev(order); got != 2 {
		t.Fatalf("FocusPrev should wrap backwards, got %d", got)
	}

	c.Blur()
	if got := FocusPrev(order); got != 2 {
		t.Fatalf("FocusPrev with nothing focused should pick the last, got %d", got)
	}
	if got := FocusNext(nil); got != -1 {
		t.Fatalf("empty order should return -1, got %d", got)
	}
}
