package prompt

import (
	"github.com/goliatone/go-formview/pkg/convert"
	"github.com/goliatone/go-formview/pkg/form"
	"github.com/goliatone/go-formview/pkg/layout"
	"github.com/goliatone/go-formview/pkg/widgets"
)

// Factory creates prompt widgets from field specs.
type Factory struct{}

var _ widgets.Factory = Factory{}

func (Factory) Text(spec widgets.Spec) form.Input[string] {
	return specField[string](spec)
}

func (Factory) Secret(spec widgets.Spec) form.Input[string] {
	return specField[string](spec, WithSecret())
}

func (Factory) Integer(spec widgets.Spec) form.Input[int64] {
	return specField[int64](spec)
}

func (Factory) Number(spec widgets.Spec) form.Input[float64] {
	return specField[float64](spec)
}

func (Factory) Heading(text string) layout.Leaf {
	return NewHeading(text)
}

func specField[T convert.Value](spec widgets.Spec, extra ...FieldOption) *Field[T] {
	label := spec.Label
	if label == "" {
		label = spec.Name
	}
	opts := []FieldOption{WithInitialText(spec.Default)}
	help := spec.Help
	if help == "" {
		help = spec.Placeholder
	}
	if help != "" {
		opts = append(opts, WithHelp(help))
	}
	if spec.Required {
		opts = append(opts, WithRequired())
	}
	return NewField[T](label, append(opts, extra...)...)
}
