package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-formview/pkg/form"
	"github.com/goliatone/go-formview/pkg/layout"
)

// Theme captures optional message prefixes.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// Asker is implemented by leaves that fill themselves through a driver.
type Asker interface {
	Ask(ctx context.Context, driver PromptDriver, theme Theme) error
}

// Announcer is implemented by display-only leaves printed as info lines.
type Announcer interface {
	Announce() string
}

// Rows is satisfied by *form.Form of any model type.
type Rows interface {
	LayoutRows() []layout.Row
}

// Option configures Fill and Run.
type Option func(*options)

type options struct {
	theme       Theme
	retry       bool
	retryPrompt string
}

// WithTheme sets message prefixes.
func WithTheme(theme Theme) Option {
	return func(o *options) {
		o.theme = theme
	}
}

// WithRetry controls whether Run offers to re-ask after a failed resolution.
// It defaults to true.
func WithRetry(retry bool) Option {
	return func(o *options) {
		o.retry = retry
	}
}

func buildOptions(opts []Option) options {
	o := options{
		theme: Theme{
			ErrorPrefix: "✗ ",
		},
		retry:       true,
		retryPrompt: "Some values were rejected. Try again?",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Fill asks every Asker among rows in row then element order and prints every
// Announcer. A leaf placed more than once is asked once.
func Fill(ctx context.Context, rows Rows, driver PromptDriver, opts ...Option) error {
	o := buildOptions(opts)
	return fill(ctx, rows, driver, o)
}

func fill(ctx context.Context, rows Rows, driver PromptDriver, o options) error {
	seen := make(map[layout.Leaf]struct{})
	for _, row := range rows.LayoutRows() {
		for _, item := range row {
			if item.Spacer || item.Leaf == nil {
				continue
			}
			if _, dup := seen[item.Leaf]; dup {
				continue
			}
			seen[item.Leaf] = struct{}{}

			switch leaf := item.Leaf.(type) {
			case Asker:
				if err := ask(ctx, leaf, driver, o.theme); err != nil {
					return err
				}
			case Announcer:
				if err := driver.Info(ctx, o.theme.InfoPrefix+leaf.Announce()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func ask(ctx context.Context, a Asker, driver PromptDriver, theme Theme) error {
	if f, ok := a.(form.Focusable); ok {
		f.Focus()
		defer f.Blur()
	}
	return a.Ask(ctx, driver, theme)
}

// Run fills f and resolves it into model. When resolution fails the failures
// are reported and, unless retries are disabled, the user may answer again
// with the previous answers offered as defaults. The last resolution is
// returned; err is only set when prompting itself fails.
func Run[M any](ctx context.Context, f *form.Form[M], model *M, driver PromptDriver, opts ...Option) (form.Resolution, error) {
	o := buildOptions(opts)
	for {
		if err := fill(ctx, f, driver, o); err != nil {
			return form.Resolution{}, err
		}
		res := f.Resolve(model)
		if res.OK {
			return res, nil
		}
		for _, line := range failureLines(f, res) {
			if err := driver.Info(ctx, o.theme.ErrorPrefix+line); err != nil {
				return res, err
			}
		}
		if !o.retry {
			return res, nil
		}
		again, err := driver.Confirm(ctx, ConfirmConfig{Message: o.retryPrompt, Default: true})
		if err != nil {
			return res, err
		}
		if !again {
			return res, nil
		}
	}
}

type labeled interface {
	Label() string
}

func failureLines[M any](f *form.Form[M], res form.Resolution) []string {
	lines := make([]string, 0, len(res.Failures))
	for _, failure := range res.Failures {
		msg := "invalid value"
		if failure.Err != nil {
			msg = failure.Err.Error()
		}
		if view, ok := f.View(failure.ID); ok {
			if l, ok := view.(labeled); ok && strings.TrimSpace(l.Label()) != "" {
				msg = fmt.Sprintf("%s: %s", strings.TrimSpace(l.Label()), msg)
			}
		}
		lines = append(lines, msg)
	}
	return lines
}

// Heading is a display-only leaf announced as an info line.
type Heading struct {
	text string
}

// NewHeading creates a heading.
func NewHeading(text string) *Heading {
	return &Heading{text: text}
}

func (h *Heading) Announce() string     { return h.text }
func (h *Heading) IntrinsicHeight() int { return 1 }
