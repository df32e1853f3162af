package terminal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formview/pkg/convert"
)

func typeRunes(f interface{ Update(tea.Msg) tea.Cmd }, text string) {
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestTextField_OutputFollowsText(t *testing.T) {
	age := NewTextField[int]("Age")

	_, ok := age.Output()
	require.False(t, ok, "empty text must not parse as int")

	age.SetText(" 42 ")
	v, ok := age.Output()
	require.True(t, ok)
	require.Equal(t, 42, v)

	age.SetOutput(7)
	require.Equal(t, "7", age.Text())
}

func TestTextField_FiltersByModality(t *testing.T) {
	age := NewTextField[int]("Age")
	age.Focus()

	typeRunes(age, "4")
	typeRunes(age, "x")
	typeRunes(age, "2")
	require.Equal(t, "42", age.Text())

	name := NewTextField[string]("Name")
	name.Focus()
	typeRunes(name, "Jo")
	require.Equal(t, "Jo", name.Text())
}

func TestTextField_IgnoresInputWhenBlurred(t *testing.T) {
	name := NewTextField[string]("Name")
	typeRunes(name, "Jo")
	require.Empty(t, name.Text())
}

func TestTextField_PlaceholderFromModality(t *testing.T) {
	require.Equal(t, "0", NewTextField[uint8]("n").input.Placeholder)
	require.Equal(t, "0.0", NewTextField[float32]("n").input.Placeholder)
	require.Equal(t, "", NewTextField[string]("n").input.Placeholder)
	require.Equal(t, "years", NewTextField[int]("n", WithPlaceholder("years")).input.Placeholder)
}

func TestTextField_CodecField(t *testing.T) {
	codec := convert.Codec[bool]{
		Parse:  func(s string) (bool, bool) { return s == "yes", s == "yes" || s == "no" },
		Format: func(v bool) string { return map[bool]string{true: "yes", false: "no"}[v] },
	}
	f := NewCodecField("Agree", codec, WithInitialText("yes"))
	v, ok := f.Output()
	require.True(t, ok)
	require.True(t, v)

	require.Panics(t, func() { NewCodecField("broken", convert.Codec[bool]{}) })
}

func TestTextField_Render(t *testing.T) {
	name := NewTextField[string]("Name", WithInitialText("Ada"))

	out := name.Render(30)
	require.Contains(t, out, "Name")
	require.Contains(t, out, "Ada")
	require.False(t, strings.Contains(out, DefaultTheme().Glyph))

	name.Focus()
	require.True(t, strings.HasPrefix(name.Render(30), DefaultTheme().Glyph))
	require.Empty(t, name.Render(0))
}

func TestAlignLabels(t *testing.T) {
	a := NewTextField[string]("Name")
	b := NewTextField[int]("Age")

	width := AlignLabels(a, b)
	require.Equal(t, 4, width)
	require.Contains(t, b.Render(20), "Age  ")
}
