// Package html renders forms built from web widgets as HTML documents.
//
// Rows are laid out on a Grid surface of DefaultColumns columns and every
// placement becomes a CSS grid cell, so weights turn into proportional widths
// and spacers into empty columns. A row holding only spacers renders as a
// blank row of the spacer height.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formview/pkg/layout"
	rendertemplate "github.com/goliatone/go-formview/pkg/render/template"
	"github.com/goliatone/go-formview/pkg/render/template/pongo"
	"github.com/goliatone/go-formview/pkg/widgets/web"
)

// Rows is satisfied by *form.Form of any model type.
type Rows interface {
	LayoutRows() []layout.Row
}

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	theme            *theme.RendererConfig
	columns          int
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. It must
// contain templates/form.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme exposes theme tokens to the stylesheet as CSS custom properties.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithColumns changes the grid width.
func WithColumns(columns int) Option {
	return func(cfg *config) {
		if columns > 0 {
			cfg.columns = columns
		}
	}
}

// Request carries the per-render form attributes.
type Request struct {
	Action string
	Method string
	Title  string
	Submit string
	// Errors are form-level messages shown above the rows.
	Errors []string
}

// Renderer turns form rows into an HTML form.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	theme     themeView
	columns   int
}

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), columns: DefaultColumns}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		theme:     buildThemeView(cfg.theme),
		columns:   cfg.columns,
	}, nil
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

type formView struct {
	Action string   `json:"action,omitempty"`
	Method string   `json:"method"`
	Title  string   `json:"title,omitempty"`
	Submit string   `json:"submit"`
	Errors []string `json:"errors,omitempty"`
}

type rowView struct {
	Cells []cellView `json:"cells"`
}

type cellView struct {
	Column    int         `json:"column"`
	Span      int         `json:"span"`
	Spacer    bool        `json:"spacer,omitempty"`
	Height    int         `json:"height,omitempty"`
	Control   web.Control `json:"control"`
	LabelHTML string      `json:"label_html,omitempty"`
	HelpHTML  string      `json:"help_html,omitempty"`
}

// Render lays rows out on the grid and renders the form template.
func (r *Renderer) Render(ctx context.Context, rows Rows, req Request) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if rows == nil {
		return nil, fmt.Errorf("html renderer: rows are nil")
	}

	grid := NewGrid(r.columns)
	placements := layout.Apply(grid, rows.LayoutRows(), gridConfig())

	data := map[string]any{
		"form":    buildFormView(req),
		"rows":    buildRows(placements),
		"columns": r.columns,
		"theme":   r.theme,
	}
	result, err := r.templates.RenderTemplate("templates/form.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func buildFormView(req Request) formView {
	method := strings.ToLower(strings.TrimSpace(req.Method))
	if method == "" {
		method = "post"
	}
	submit := strings.TrimSpace(req.Submit)
	if submit == "" {
		submit = "Submit"
	}
	return formView{
		Action: strings.TrimSpace(req.Action),
		Method: method,
		Title:  strings.TrimSpace(req.Title),
		Submit: submit,
		Errors: normalizeMessages(req.Errors),
	}
}

func buildRows(placements []layout.Placement) []rowView {
	var rows []rowView
	current := -1
	for _, p := range placements {
		if p.Row != current {
			rows = append(rows, rowView{})
			current = p.Row
		}
		cell := cellView{Column: p.Frame.X + 1, Span: p.Frame.Width}
		if cell.Span < 1 {
			cell.Span = 1
		}
		if p.Spacer {
			cell.Spacer, cell.Height = true, p.Frame.Height
		} else if c, ok := p.Leaf.(web.Controller); ok {
			cell.Control = c.Control()
			cell.Control.Errors = normalizeMessages(cell.Control.Errors)
			cell.LabelHTML = sanitizeMarkup(cell.Control.Label)
			cell.HelpHTML = sanitizeMarkup(cell.Control.Help)
		}
		rows[len(rows)-1].Cells = append(rows[len(rows)-1].Cells, cell)
	}

	// Spacers next to content are covered by grid placement; only rows made
	// of spacers alone keep a cell to hold their height.
	for i := range rows {
		if spacersOnly(rows[i].Cells) {
			continue
		}
		kept := rows[i].Cells[:0]
		for _, cell := range rows[i].Cells {
			if !cell.Spacer {
				kept = append(kept, cell)
			}
		}
		rows[i].Cells = kept
	}
	return rows
}

func spacersOnly(cells []cellView) bool {
	for _, cell := range cells {
		if !cell.Spacer {
			return false
		}
	}
	return true
}
