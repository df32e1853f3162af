package web

import "github.com/goliatone/go-formview/pkg/layout"

// Control kinds.
const (
	KindInput   = "input"
	KindHeading = "heading"
)

// Control is the template-facing description of a widget.
type Control struct {
	Kind        string   `json:"kind"`
	Name        string   `json:"name,omitempty"`
	Label       string   `json:"label,omitempty"`
	Help        string   `json:"help,omitempty"`
	Value       string   `json:"value,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Type        string   `json:"type,omitempty"`
	InputMode   string   `json:"inputmode,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Autofocus   bool     `json:"autofocus,omitempty"`
	Errors      []string `json:"errors,omitempty"`
}

// Controller is a leaf the html renderer can draw.
type Controller interface {
	layout.Leaf
	Control() Control
}

// Heading is a display-only title.
type Heading struct {
	text string
}

// NewHeading creates a heading.
func NewHeading(text string) *Heading {
	return &Heading{text: text}
}

func (h *Heading) IntrinsicHeight() int { return 1 }

func (h *Heading) Control() Control {
	return Control{Kind: KindHeading, Label: h.text}
}
