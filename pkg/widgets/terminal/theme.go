package terminal

import (
	"github.com/charmbracelet/lipgloss"
	theme "github.com/goliatone/go-theme"
)

// Token names read from a theme manifest.
const (
	TokenBrand   = "brand"
	TokenText    = "text"
	TokenMuted   = "muted"
	TokenError   = "error"
	TokenSuccess = "success"
)

var defaultTokens = map[string]string{
	TokenBrand:   "#7D56F4",
	TokenText:    "#FAFAFA",
	TokenMuted:   "#666666",
	TokenError:   "#FF6B6B",
	TokenSuccess: "#90EE90",
}

// Theme holds the styles used by widgets and programs.
type Theme struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Indicator   lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Help        lipgloss.Style

	// Glyph marks the focused field.
	Glyph string
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return themeFromTokens(nil)
}

// ThemeFromManifest derives a theme from a go-theme manifest. Variant tokens
// override the base tokens; missing tokens keep their defaults.
func ThemeFromManifest(manifest *theme.Manifest, variant string) Theme {
	if manifest == nil {
		return DefaultTheme()
	}
	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	if v, ok := manifest.Variants[variant]; ok {
		for key, value := range v.Tokens {
			tokens[key] = value
		}
	}
	return themeFromTokens(tokens)
}

func themeFromTokens(tokens map[string]string) Theme {
	color := func(name string) lipgloss.Color {
		if value := tokens[name]; value != "" {
			return lipgloss.Color(value)
		}
		return lipgloss.Color(defaultTokens[name])
	}

	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(color(TokenText)).
			Background(color(TokenBrand)).
			Padding(0, 1),
		Label:       lipgloss.NewStyle().Foreground(color(TokenText)),
		Input:       lipgloss.NewStyle().Foreground(color(TokenText)),
		Placeholder: lipgloss.NewStyle().Foreground(color(TokenMuted)),
		Indicator:   lipgloss.NewStyle().Foreground(color(TokenBrand)),
		Error:       lipgloss.NewStyle().Foreground(color(TokenError)),
		Success:     lipgloss.NewStyle().Foreground(color(TokenSuccess)),
		Help:        lipgloss.NewStyle().Foreground(color(TokenMuted)),
		Glyph:       "▌",
	}
}
