package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formview/pkg/form"
	"github.com/goliatone/go-formview/pkg/layout"
	"github.com/goliatone/go-formview/pkg/render/html"
	"github.com/goliatone/go-formview/pkg/widgets"
	"github.com/goliatone/go-formview/pkg/widgets/prompt"
	"github.com/goliatone/go-formview/pkg/widgets/terminal"
	"github.com/goliatone/go-formview/pkg/widgets/web"
)

const (
	modeTerminal = "tui"
	modePrompt   = "prompt"
	modeHTML     = "html"
)

// presenter shows one form in the selected mode.
type presenter struct {
	g       *globals
	title   string
	serve   bool
	factory widgets.Factory
	align   func() int
}

func newPresenter(g *globals, title string) (*presenter, error) {
	p := &presenter{g: g, title: title}
	switch g.mode {
	case modeTerminal:
		tf := terminal.NewFactory(terminal.ThemeFromManifest(p.manifest(), ""))
		p.factory, p.align = tf, tf.AlignLabels
	case modePrompt:
		p.factory = prompt.Factory{}
	case modeHTML:
		p.factory = web.Factory{}
	default:
		return nil, fmt.Errorf("formview: unknown mode %q", g.mode)
	}
	return p, nil
}

// formOptions returns the options every form is created with.
func (p *presenter) formOptions() ([]form.Option, error) {
	base := layout.DefaultConfig()
	if p.g.mode == modeTerminal {
		base = layout.TerminalConfig()
	}
	cfg, err := loadLayout(p.g.cfg.LayoutFile, base)
	if err != nil {
		return nil, err
	}
	return []form.Option{
		form.WithStrict(p.g.cfg.Strict),
		form.WithLogger(logger),
		form.WithLayoutConfig(cfg),
	}, nil
}

func (p *presenter) manifest() *theme.Manifest {
	if p.g.cfg.ThemeBrand == "" {
		return nil
	}
	return &theme.Manifest{
		Name:   "formview",
		Tokens: map[string]string{terminal.TokenBrand: p.g.cfg.ThemeBrand},
	}
}

func loadLayout(path string, base layout.Config) (layout.Config, error) {
	if path == "" {
		return base, nil
	}
	return layout.LoadConfig(os.DirFS(filepath.Dir(path)), filepath.Base(path), base)
}

// present runs a form built by newForm to completion and prints the resolved
// model as JSON. Served forms are built once per request.
func present[M any](ctx context.Context, p *presenter, newForm func() (*form.Form[M], error), newModel func() M, out io.Writer) error {
	if p.g.mode == modeHTML && p.serve {
		renderer, err := html.New(html.WithTheme(html.ThemeConfig(p.manifest(), "")))
		if err != nil {
			return err
		}
		return serve(ctx, p.g.cfg.Addr, &handler[M]{
			newForm:  newForm,
			renderer: renderer,
			newModel: newModel,
			title:    p.title,
		})
	}

	f, err := newForm()
	if err != nil {
		return err
	}
	if p.align != nil {
		p.align()
	}

	switch p.g.mode {
	case modeTerminal:
		prog := terminal.NewProgram(f, newModel,
			terminal.WithTitle(p.title),
			terminal.WithTheme(terminal.ThemeFromManifest(p.manifest(), "")),
			terminal.WithWidth(p.g.cfg.Width))
		res, err := prog.Run(ctx)
		if err != nil {
			return err
		}
		return writeModel(out, res.Model)

	case modePrompt:
		model := newModel()
		if _, err := prompt.Run(ctx, f, &model, prompt.NewSurveyDriver(out)); err != nil {
			return err
		}
		return writeModel(out, model)

	default:
		renderer, err := html.New(html.WithTheme(html.ThemeConfig(p.manifest(), "")))
		if err != nil {
			return err
		}
		page, err := renderer.Render(ctx, f, html.Request{Method: "post", Title: p.title})
		if err != nil {
			return err
		}
		if p.g.output == "" {
			_, err = out.Write(page)
			return err
		}
		if err := os.WriteFile(p.g.output, page, 0o644); err != nil {
			return fmt.Errorf("formview: write output: %w", err)
		}
		fmt.Fprintf(out, "Form written to %s\n", p.g.output)
		return nil
	}
}

func writeModel(out io.Writer, model any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(model)
}
