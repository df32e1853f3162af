package form

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-formview/pkg/layout"
)

// Option configures a Form.
type Option func(*config)

type config struct {
	strict bool
	logger *zap.Logger
	layout layout.Config
}

// WithStrict turns composition mistakes into panics. Use it in tests and
// debug builds; production forms drop the offending element and log it.
func WithStrict(strict bool) Option {
	return func(cfg *config) {
		cfg.strict = strict
	}
}

// WithLogger overrides the package logger for one form.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithLayoutConfig sets the metrics used by Layout.
func WithLayoutConfig(c layout.Config) Option {
	return func(cfg *config) {
		cfg.layout = c
	}
}
