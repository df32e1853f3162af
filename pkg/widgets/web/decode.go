package web

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-formview/pkg/form"
)

// Focusables is satisfied by *form.Form of any model type.
type Focusables interface {
	FocusOrder() []form.Focusable
}

// Named is implemented by fields that read a form parameter.
type Named interface {
	Name() string
	SetText(text string)
}

// ErrorSetter is implemented by fields that display resolution errors.
type ErrorSetter interface {
	AddError(msg string)
	ClearErrors()
}

// Decode copies submitted values into the named fields of f. Fields whose
// parameter is absent keep their text. It returns the number of fields set.
func Decode(f Focusables, values url.Values) int {
	set := 0
	for _, el := range f.FocusOrder() {
		named, ok := el.(Named)
		if !ok || named.Name() == "" || !values.Has(named.Name()) {
			continue
		}
		named.SetText(values.Get(named.Name()))
		set++
	}
	return set
}

// Annotate replaces the errors shown by the fields of f with the failures of
// res. Failures without a reason read "invalid value".
func Annotate[M any](f *form.Form[M], res form.Resolution) {
	for _, el := range f.FocusOrder() {
		if setter, ok := el.(ErrorSetter); ok {
			setter.ClearErrors()
		}
	}
	for _, failure := range res.Failures {
		view, ok := f.View(failure.ID)
		if !ok {
			continue
		}
		setter, ok := view.(ErrorSetter)
		if !ok {
			continue
		}
		msg := "invalid value"
		if failure.Err != nil && strings.TrimSpace(failure.Err.Error()) != "" {
			msg = strings.TrimSpace(failure.Err.Error())
		}
		setter.AddError(msg)
	}
}
