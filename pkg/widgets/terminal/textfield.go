package terminal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formview/pkg/convert"
)

// FieldOption customises a TextField.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	placeholder string
	initial     string
	secret      bool
	charLimit   int
	theme       Theme
}

// WithPlaceholder replaces the placeholder derived from the field modality.
func WithPlaceholder(placeholder string) FieldOption {
	return func(c *fieldConfig) {
		c.placeholder = placeholder
	}
}

// WithInitialText pre-fills the field.
func WithInitialText(text string) FieldOption {
	return func(c *fieldConfig) {
		c.initial = text
	}
}

// WithSecret masks the typed text.
func WithSecret() FieldOption {
	return func(c *fieldConfig) {
		c.secret = true
	}
}

// WithCharLimit caps the number of characters accepted.
func WithCharLimit(limit int) FieldOption {
	return func(c *fieldConfig) {
		c.charLimit = limit
	}
}

// WithFieldTheme styles the field.
func WithFieldTheme(t Theme) FieldOption {
	return func(c *fieldConfig) {
		c.theme = t
	}
}

// TextField is a single line input whose text converts to T.
type TextField[T any] struct {
	label      string
	labelWidth int
	codec      convert.Codec[T]
	input      textinput.Model
	theme      Theme
}

// NewTextField creates a field for one of the built-in convertible types.
func NewTextField[T convert.Value](label string, opts ...FieldOption) *TextField[T] {
	return NewCodecField(label, convert.CodecFor[T](), opts...)
}

// NewCodecField creates a field converting its text with codec.
func NewCodecField[T any](label string, codec convert.Codec[T], opts ...FieldOption) *TextField[T] {
	if !codec.Valid() {
		panic("terminal: codec requires Parse and Format")
	}
	cfg := fieldConfig{theme: DefaultTheme()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = cfg.placeholder
	if in.Placeholder == "" {
		in.Placeholder = placeholderFor(codec.Modality)
	}
	if cfg.charLimit > 0 {
		in.CharLimit = cfg.charLimit
	}
	if cfg.secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	in.TextStyle = cfg.theme.Input
	in.PlaceholderStyle = cfg.theme.Placeholder
	in.SetValue(cfg.initial)

	return &TextField[T]{
		label: label,
		codec: codec,
		input: in,
		theme: cfg.theme,
	}
}

func placeholderFor(m convert.Modality) string {
	switch m {
	case convert.ModalityNumeric:
		return "0"
	case convert.ModalityDecimal:
		return "0.0"
	default:
		return ""
	}
}

// Label returns the field caption.
func (f *TextField[T]) Label() string { return f.label }

// SetLabelWidth pads the caption to width cells so that fields in different
// rows line up. Zero turns padding off.
func (f *TextField[T]) SetLabelWidth(width int) {
	if width < 0 {
		width = 0
	}
	f.labelWidth = width
}

// Text returns the typed text.
func (f *TextField[T]) Text() string { return f.input.Value() }

// SetText replaces the typed text.
func (f *TextField[T]) SetText(text string) { f.input.SetValue(text) }

// Output converts the text; ok is false when it does not parse.
func (f *TextField[T]) Output() (T, bool) { return f.codec.Parse(f.input.Value()) }

// SetOutput writes the text form of v.
func (f *TextField[T]) SetOutput(v T) { f.input.SetValue(f.codec.Format(v)) }

func (f *TextField[T]) Focus()               { f.input.Focus() }
func (f *TextField[T]) Blur()                { f.input.Blur() }
func (f *TextField[T]) Focused() bool        { return f.input.Focused() }
func (f *TextField[T]) IntrinsicHeight() int { return 1 }

// Update feeds a bubbletea message to the input. Typed characters the field
// modality does not accept are dropped.
func (f *TextField[T]) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyRunes {
		for _, r := range key.Runes {
			if !f.codec.Modality.Accepts(r) {
				return nil
			}
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// Render draws the field on a single line of at most width cells.
func (f *TextField[T]) Render(width int) string {
	if width <= 0 {
		return ""
	}
	indicator := " "
	if f.input.Focused() {
		indicator = f.theme.Indicator.Render(f.theme.Glyph)
	}

	head := indicator
	if label := padRight(f.label, f.labelWidth); label != "" {
		head += f.theme.Label.Render(label) + " "
	}

	avail := width - lipgloss.Width(head)
	if avail < 2 {
		return lipgloss.NewStyle().MaxWidth(width).Render(head)
	}
	// one cell stays free for the cursor
	f.input.Width = avail - 1
	return lipgloss.NewStyle().MaxWidth(width).Render(head + f.input.View())
}

// Labeled is implemented by widgets with an alignable caption.
type Labeled interface {
	Label() string
	SetLabelWidth(width int)
}

// AlignLabels pads every caption to the widest one and returns that width.
func AlignLabels(fields ...Labeled) int {
	widest := 0
	for _, f := range fields {
		if w := lipgloss.Width(f.Label()); w > widest {
			widest = w
		}
	}
	for _, f := range fields {
		f.SetLabelWidth(widest)
	}
	return widest
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
