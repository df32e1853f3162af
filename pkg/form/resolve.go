package form

import (
	"errors"

	"go.uber.org/zap"
)

// Failure records an assignment that reported failure.
type Failure struct {
	ID  ID
	Err error
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	// OK is true when every visited assignment succeeded.
	OK bool
	// Errors holds every non-nil error an assignment returned, in visitation
	// order, including errors returned alongside success.
	Errors []error
	// Failures lists the assignments that reported failure, in visitation
	// order. Err may be nil when the assignment gave no reason.
	Failures []Failure
	// Visited counts the assignments invoked.
	Visited int
}

// Err joins Errors into a single error, or returns nil.
func (r Resolution) Err() error {
	return errors.Join(r.Errors...)
}

// Failed reports whether the binding id reported failure.
func (r Resolution) Failed(id ID) bool {
	for _, f := range r.Failures {
		if f.ID == id {
			return true
		}
	}
	return false
}

// Resolve applies every input in row then element order to model. Spacers
// and views are skipped. Nothing is rolled back when an assignment fails and
// the form itself is not modified, so Resolve can be called again after the
// inputs change.
func (f *Form[M]) Resolve(model *M) Resolution {
	if model == nil {
		return Resolution{Errors: []error{ErrNilModel}}
	}

	res := Resolution{OK: true}
	f.walk(func(_ int, b binding[M]) {
		if !b.isInput() {
			return
		}
		ok, err := b.resolve(model)
		res.Visited++
		if err != nil {
			res.Errors = append(res.Errors, err)
		}
		if !ok {
			res.OK = false
			res.Failures = append(res.Failures, Failure{ID: b.id(), Err: err})
		}
	})

	f.logger().Debug("form resolved",
		zap.Bool("ok", res.OK),
		zap.Int("visited", res.Visited),
		zap.Int("errors", len(res.Errors)))
	return res
}
