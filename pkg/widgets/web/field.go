package web

import "github.com/goliatone/go-formview/pkg/convert"

// FieldOption customises a TextField.
type FieldOption func(*fieldOptions)

type fieldOptions struct {
	help        string
	placeholder string
	initial     string
	secret      bool
	required    bool
}

// WithHelp sets the hint shown under the input.
func WithHelp(help string) FieldOption {
	return func(o *fieldOptions) { o.help = help }
}

// WithPlaceholder sets the input placeholder.
func WithPlaceholder(placeholder string) FieldOption {
	return func(o *fieldOptions) { o.placeholder = placeholder }
}

// WithInitialText pre-fills the field.
func WithInitialText(text string) FieldOption {
	return func(o *fieldOptions) { o.initial = text }
}

// WithSecret renders a password input whose value is never echoed back.
func WithSecret() FieldOption {
	return func(o *fieldOptions) { o.secret = true }
}

// WithRequired marks the input as required.
func WithRequired() FieldOption {
	return func(o *fieldOptions) { o.required = true }
}

// TextField is an HTML text input whose submitted text converts to T.
type TextField[T any] struct {
	name    string
	label   string
	codec   convert.Codec[T]
	opts    fieldOptions
	text    string
	errors  []string
	focused bool
}

// NewTextField creates a field for one of the built-in convertible types.
// name is the form parameter the field reads on Decode.
func NewTextField[T convert.Value](name, label string, opts ...FieldOption) *TextField[T] {
	return NewCodecField(name, label, convert.CodecFor[T](), opts...)
}

// NewCodecField creates a field converting its text with codec.
func NewCodecField[T any](name, label string, codec convert.Codec[T], opts ...FieldOption) *TextField[T] {
	if !codec.Valid() {
		panic("web: codec requires Parse and Format")
	}
	var o fieldOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &TextField[T]{name: name, label: label, codec: codec, opts: o, text: o.initial}
}

func (f *TextField[T]) Name() string         { return f.name }
func (f *TextField[T]) Label() string        { return f.label }
func (f *TextField[T]) Text() string         { return f.text }
func (f *TextField[T]) SetText(text string)  { f.text = text }
func (f *TextField[T]) Output() (T, bool)    { return f.codec.Parse(f.text) }
func (f *TextField[T]) SetOutput(v T)        { f.text = f.codec.Format(v) }
func (f *TextField[T]) Focus()               { f.focused = true }
func (f *TextField[T]) Blur()                { f.focused = false }
func (f *TextField[T]) Focused() bool        { return f.focused }
func (f *TextField[T]) IntrinsicHeight() int { return 1 }

// Errors returns the messages attached by Annotate.
func (f *TextField[T]) Errors() []string { return append([]string(nil), f.errors...) }

// AddError attaches a message shown next to the input.
func (f *TextField[T]) AddError(msg string) { f.errors = append(f.errors, msg) }

// ClearErrors removes every attached message.
func (f *TextField[T]) ClearErrors() { f.errors = nil }

// Control implements Controller.
func (f *TextField[T]) Control() Control {
	c := Control{
		Kind:        KindInput,
		Name:        f.name,
		Label:       f.label,
		Help:        f.opts.help,
		Value:       f.text,
		Placeholder: f.opts.placeholder,
		Type:        "text",
		InputMode:   f.codec.Modality.HTMLInputMode(),
		Required:    f.opts.required,
		Autofocus:   f.focused,
		Errors:      f.Errors(),
	}
	if f.opts.secret {
		c.Type = "password"
		c.Value = ""
	}
	return c
}
