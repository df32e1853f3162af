// Package form binds heterogeneous, strongly typed inputs to a single output
// model and lays them out in weighted rows.
//
// A Form is generic over the model type only. Each input is registered with
// BindInput together with an Assign function typed on both the model and the
// input's value type; the pair is stored behind an erased binding so inputs of
// different value types share one index. Static views (titles, captions) are
// registered with BindView and only take part in layout.
//
// Rows are composed from Elements, which reference bindings by ID and carry a
// weight, or are spacers. Resolve walks the rows in insertion order, hands each
// input's current value to its Assign function and aggregates the outcome:
//
//	f := form.New[Person]()
//	first := form.BindInput(f, firstField, form.Set(func(p *Person, v string) { p.First = v }))
//	age := form.BindInput(f, ageField, form.Set(func(p *Person, v int) { p.Age = v }))
//	f.AddRow(form.Elem(first, 2), form.Spacer(1))
//	f.AddRow(form.Elems(age)...)
//
//	var p Person
//	res := f.Resolve(&p)
//
// Resolution is best effort: assignments that succeed before a later failure
// keep their effect on the model. A Form is owned by a single goroutine for
// its whole lifetime and has no internal locking.
package form
