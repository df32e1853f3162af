package terminal

import "github.com/charmbracelet/lipgloss"

// Label is a static view, typically a section title.
type Label struct {
	text  string
	style lipgloss.Style
}

// NewLabel creates a label drawn with style.
func NewLabel(text string, style lipgloss.Style) *Label {
	return &Label{text: text, style: style}
}

func (l *Label) Text() string         { return l.text }
func (l *Label) SetText(text string)  { l.text = text }
func (l *Label) IntrinsicHeight() int { return lipgloss.Height(l.style.Render(l.text)) }

// Render draws the label clipped to width cells.
func (l *Label) Render(width int) string {
	if width <= 0 {
		return ""
	}
	return l.style.MaxWidth(width).Render(l.text)
}
