// Package config holds the process configuration of the formview command,
// decoded from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config of the formview command. Flags override these values.
type Config struct {
	// LayoutFile is a JSON or YAML layout config. ENV: FORMVIEW_LAYOUT
	LayoutFile string `env:"FORMVIEW_LAYOUT"`
	// Width of the terminal canvas before the first resize. ENV: FORMVIEW_WIDTH
	Width int `env:"FORMVIEW_WIDTH,default=80"`
	// Debug switches to a development logger. ENV: FORMVIEW_DEBUG
	Debug bool `env:"FORMVIEW_DEBUG,default=false"`
	// Strict makes forms panic on rows naming unknown elements. ENV: FORMVIEW_STRICT
	Strict bool `env:"FORMVIEW_STRICT,default=false"`
	// ThemeBrand overrides the brand colour token. ENV: FORMVIEW_THEME_BRAND
	ThemeBrand string `env:"FORMVIEW_THEME_BRAND"`
	// Addr served by `--serve` in html mode. ENV: FORMVIEW_ADDR
	Addr string `env:"FORMVIEW_ADDR,default=127.0.0.1:8080"`
}

// Load decodes Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("config: decode environment: %w", err)
	}
	if cfg.Width <= 0 {
		return Config{}, fmt.Errorf("config: FORMVIEW_WIDTH must be positive, got %d", cfg.Width)
	}
	return cfg, nil
}
