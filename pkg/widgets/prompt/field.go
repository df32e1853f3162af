package prompt

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formview/pkg/convert"
)

// FieldOption customises a Field.
type FieldOption func(*fieldOptions)

type fieldOptions struct {
	help     string
	initial  string
	secret   bool
	required bool
}

// WithHelp sets the text shown when the user asks for help.
func WithHelp(help string) FieldOption {
	return func(o *fieldOptions) {
		o.help = help
	}
}

// WithInitialText pre-fills the field; it is offered as the prompt default.
func WithInitialText(text string) FieldOption {
	return func(o *fieldOptions) {
		o.initial = text
	}
}

// WithSecret asks with a masked password prompt.
func WithSecret() FieldOption {
	return func(o *fieldOptions) {
		o.secret = true
	}
}

// WithRequired rejects blank answers. Without it a blank answer is kept even
// when it does not convert, leaving the decision to the binding.
func WithRequired() FieldOption {
	return func(o *fieldOptions) {
		o.required = true
	}
}

// Field is an input filled by asking a question.
type Field[T any] struct {
	label   string
	codec   convert.Codec[T]
	opts    fieldOptions
	text    string
	focused bool
}

// NewField creates a field for one of the built-in convertible types.
func NewField[T convert.Value](label string, opts ...FieldOption) *Field[T] {
	return NewCodecField(label, convert.CodecFor[T](), opts...)
}

// NewCodecField creates a field converting its answer with codec.
func NewCodecField[T any](label string, codec convert.Codec[T], opts ...FieldOption) *Field[T] {
	if !codec.Valid() {
		panic("prompt: codec requires Parse and Format")
	}
	var o fieldOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Field[T]{label: label, codec: codec, opts: o, text: o.initial}
}

func (f *Field[T]) Label() string        { return f.label }
func (f *Field[T]) Text() string         { return f.text }
func (f *Field[T]) SetText(text string)  { f.text = text }
func (f *Field[T]) Output() (T, bool)    { return f.codec.Parse(f.text) }
func (f *Field[T]) SetOutput(v T)        { f.text = f.codec.Format(v) }
func (f *Field[T]) Focus()               { f.focused = true }
func (f *Field[T]) Blur()                { f.focused = false }
func (f *Field[T]) Focused() bool        { return f.focused }
func (f *Field[T]) IntrinsicHeight() int { return 1 }

// Check reports why text would be rejected as an answer.
func (f *Field[T]) Check(text string) error {
	if strings.TrimSpace(text) == "" {
		if f.opts.required {
			return ErrEmpty
		}
		return nil
	}
	if _, ok := f.codec.Parse(text); !ok {
		return fmt.Errorf("%w: %q is not a valid %s", ErrUnparsable, text, f.codec.Modality)
	}
	return nil
}

// Ask prompts until the driver returns an acceptable answer, reporting each
// rejection through the driver.
func (f *Field[T]) Ask(ctx context.Context, driver PromptDriver, theme Theme) error {
	cfg := InputConfig{
		Message:   theme.PromptPrefix + f.label,
		Default:   f.text,
		Help:      f.opts.help,
		Validator: f.Check,
	}
	ask := driver.Input
	if f.opts.secret {
		ask = driver.Password
	}

	for {
		text, err := ask(ctx, cfg)
		if err != nil {
			return err
		}
		if err := f.Check(text); err != nil {
			Logger().Debug("prompt re-ask", zap.String("field", f.label), zap.Error(err))
			if err := driver.Info(ctx, theme.ErrorPrefix+err.Error()); err != nil {
				return err
			}
			continue
		}
		f.text = text
		return nil
	}
}
