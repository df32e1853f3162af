package terminal

import (
	"github.com/goliatone/go-formview/pkg/convert"
	"github.com/goliatone/go-formview/pkg/form"
	"github.com/goliatone/go-formview/pkg/layout"
	"github.com/goliatone/go-formview/pkg/widgets"
)

// Factory creates terminal widgets from field specs. It remembers the fields
// it made so their labels can be aligned once the form is complete.
type Factory struct {
	theme  Theme
	fields []Labeled
}

var _ widgets.Factory = (*Factory)(nil)

// NewFactory creates a factory styling its widgets with t.
func NewFactory(t Theme) *Factory {
	return &Factory{theme: t}
}

func (f *Factory) Text(spec widgets.Spec) form.Input[string] {
	return specField[string](f, spec)
}

func (f *Factory) Secret(spec widgets.Spec) form.Input[string] {
	return specField[string](f, spec, WithSecret())
}

func (f *Factory) Integer(spec widgets.Spec) form.Input[int64] {
	return specField[int64](f, spec)
}

func (f *Factory) Number(spec widgets.Spec) form.Input[float64] {
	return specField[float64](f, spec)
}

// Heading creates a title label.
func (f *Factory) Heading(text string) layout.Leaf {
	return NewLabel(text, f.theme.Title)
}

// AlignLabels aligns the captions of every field created so far.
func (f *Factory) AlignLabels() int {
	return AlignLabels(f.fields...)
}

func specField[T convert.Value](f *Factory, spec widgets.Spec, extra ...FieldOption) *TextField[T] {
	label := spec.Label
	if label == "" {
		label = spec.Name
	}
	if spec.Required {
		label += "*"
	}
	opts := []FieldOption{
		WithFieldTheme(f.theme),
		WithInitialText(spec.Default),
	}
	if spec.Placeholder != "" {
		opts = append(opts, WithPlaceholder(spec.Placeholder))
	}
	field := NewTextField[T](label, append(opts, extra...)...)
	f.fields = append(f.fields, field)
	return field
}
