package terminal

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-formview/pkg/form"
	"github.com/goliatone/go-formview/pkg/layout"
)

// Result is the outcome of the last submission.
type Result[M any] struct {
	Model      M
	Resolution form.Resolution
}

// ProgramOption customises a Program.
type ProgramOption func(*programConfig)

type programConfig struct {
	title         string
	help          string
	theme         Theme
	width         int
	quitOnSuccess bool
	teaOptions    []tea.ProgramOption
}

// WithTitle draws a title above the form.
func WithTitle(title string) ProgramOption {
	return func(c *programConfig) {
		c.title = title
	}
}

// WithTheme styles the program chrome.
func WithTheme(t Theme) ProgramOption {
	return func(c *programConfig) {
		c.theme = t
	}
}

// WithWidth sets the canvas width used until the terminal reports its size.
func WithWidth(width int) ProgramOption {
	return func(c *programConfig) {
		if width > 0 {
			c.width = width
		}
	}
}

// WithQuitOnSuccess controls whether a successful submission ends the
// program. It defaults to true.
func WithQuitOnSuccess(quit bool) ProgramOption {
	return func(c *programConfig) {
		c.quitOnSuccess = quit
	}
}

// WithTeaOptions forwards options to tea.NewProgram.
func WithTeaOptions(opts ...tea.ProgramOption) ProgramOption {
	return func(c *programConfig) {
		c.teaOptions = append(c.teaOptions, opts...)
	}
}

type updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// Program is a bubbletea model presenting a form. Tab and shift+tab move
// focus, enter resolves into a fresh model, esc and ctrl+c quit.
type Program[M any] struct {
	form     *form.Form[M]
	newModel func() M
	canvas   *Canvas
	order    []form.Focusable
	cfg      programConfig
	last     *Result[M]
}

// NewProgram wraps f. newModel supplies the value each submission resolves
// into; nil uses the zero value of M.
func NewProgram[M any](f *form.Form[M], newModel func() M, opts ...ProgramOption) *Program[M] {
	cfg := programConfig{
		theme:         DefaultTheme(),
		width:         80,
		quitOnSuccess: true,
		help:          "tab/shift+tab: move • enter: submit • esc: quit",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if newModel == nil {
		newModel = func() M {
			var zero M
			return zero
		}
	}

	p := &Program[M]{
		form:     f,
		newModel: newModel,
		canvas:   NewCanvas(cfg.width),
		order:    f.FocusOrder(),
		cfg:      cfg,
	}
	if form.Focused(p.order) < 0 {
		form.FocusNext(p.order)
	}
	f.Layout(p.canvas)
	return p
}

// Init implements tea.Model.
func (p *Program[M]) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p *Program[M]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Width != p.canvas.Width() {
			p.canvas.SetWidth(msg.Width)
			p.form.Layout(p.canvas)
		}
		return p, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return p, tea.Quit
		case "tab", "down":
			form.FocusNext(p.order)
			return p, nil
		case "shift+tab", "up":
			form.FocusPrev(p.order)
			return p, nil
		case "enter":
			res := p.Submit()
			if res.Resolution.OK && p.cfg.quitOnSuccess {
				return p, tea.Quit
			}
			return p, nil
		}
	}

	if i := form.Focused(p.order); i >= 0 {
		if u, ok := p.order[i].(updater); ok {
			return p, u.Update(msg)
		}
	}
	return p, nil
}

// Submit resolves the form into a new model and records the result.
func (p *Program[M]) Submit() Result[M] {
	model := p.newModel()
	res := p.form.Resolve(&model)
	p.last = &Result[M]{Model: model, Resolution: res}
	return *p.last
}

// Last returns the most recent submission.
func (p *Program[M]) Last() (Result[M], bool) {
	if p.last == nil {
		return Result[M]{}, false
	}
	return *p.last, true
}

// View implements tea.Model.
func (p *Program[M]) View() string {
	var b strings.Builder
	if p.cfg.title != "" {
		b.WriteString(p.cfg.theme.Title.Render(p.cfg.title))
		b.WriteString("\n\n")
	}
	b.WriteString(p.canvas.Render())
	b.WriteString("\n\n")

	if p.last != nil {
		if p.last.Resolution.OK {
			b.WriteString(p.cfg.theme.Success.Render(fmt.Sprintf("✓ %+v", p.last.Model)))
			b.WriteString("\n")
		}
		for _, line := range p.failureLines() {
			b.WriteString(p.cfg.theme.Error.Render("✗ " + line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(p.cfg.theme.Help.Render(p.cfg.help))
	b.WriteString("\n")
	return b.String()
}

func (p *Program[M]) failureLines() []string {
	var lines []string
	for _, failure := range p.last.Resolution.Failures {
		msg := "invalid value"
		if failure.Err != nil {
			msg = failure.Err.Error()
		}
		if view, ok := p.form.View(failure.ID); ok {
			if l, ok := view.(Labeled); ok && strings.TrimSpace(l.Label()) != "" {
				msg = strings.TrimSpace(l.Label()) + ": " + msg
			}
		}
		lines = append(lines, msg)
	}
	return lines
}

// Run starts the program on the terminal and blocks until it quits. It
// returns ErrAborted, along with the last failed result if any, when the user
// quits without a successful submission.
func (p *Program[M]) Run(ctx context.Context) (Result[M], error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.cfg.teaOptions...)
	if _, err := tea.NewProgram(p, opts...).Run(); err != nil {
		return Result[M]{}, fmt.Errorf("terminal: run program: %w", err)
	}
	if p.last == nil {
		return Result[M]{}, ErrAborted
	}
	if !p.last.Resolution.OK {
		return *p.last, ErrAborted
	}
	return *p.last, nil
}

var _ layout.Surface = (*Canvas)(nil)
