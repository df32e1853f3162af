package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the spacing metrics used by Compute.
type Config struct {
	Insets              Insets `json:"insets" yaml:"insets"`
	HorizontalSpacing   int    `json:"horizontalSpacing" yaml:"horizontalSpacing"`
	VerticalSpacing     int    `json:"verticalSpacing" yaml:"verticalSpacing"`
	DefaultSpacerHeight int    `json:"defaultSpacerHeight" yaml:"defaultSpacerHeight"`
}

// DefaultConfig returns point-based metrics: 5pt gaps and 10pt spacer rows.
func DefaultConfig() Config {
	return Config{
		HorizontalSpacing:   5,
		VerticalSpacing:     5,
		DefaultSpacerHeight: 10,
	}
}

// TerminalConfig returns cell-based metrics suited to terminal surfaces.
func TerminalConfig() Config {
	return Config{
		Insets:              Insets{Left: 1, Right: 1},
		HorizontalSpacing:   2,
		VerticalSpacing:     0,
		DefaultSpacerHeight: 1,
	}
}

// Validate rejects negative metrics.
func (c Config) Validate() error {
	var errs []error
	check := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("layout: %s must not be negative (got %d)", name, v))
		}
	}
	check("insets.top", c.Insets.Top)
	check("insets.left", c.Insets.Left)
	check("insets.bottom", c.Insets.Bottom)
	check("insets.right", c.Insets.Right)
	check("horizontalSpacing", c.HorizontalSpacing)
	check("verticalSpacing", c.VerticalSpacing)
	check("defaultSpacerHeight", c.DefaultSpacerHeight)
	return errors.Join(errs...)
}

// ParseConfig decodes JSON or YAML metrics on top of base. Keys missing from
// the document keep the base values.
func ParseConfig(data []byte, source string, base Config) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("layout: config %s is empty", source)
	}

	cfg := base
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = base
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("layout: parse %s: invalid JSON or YAML", source)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("layout: config %s: %w", source, err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a config file from fsys.
func LoadConfig(fsys fs.FS, path string, base Config) (Config, error) {
	if fsys == nil {
		return Config{}, errors.New("layout: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("layout: read %s: %w", path, err)
	}
	return ParseConfig(data, path, base)
}
