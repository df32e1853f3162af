package terminal

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formview/pkg/layout"
)

type blank struct{}

func (blank) IntrinsicHeight() int { return 1 }

func TestCanvas_RendersAtFrames(t *testing.T) {
	c := NewCanvas(20)
	c.Place(NewLabel("cd", lipgloss.NewStyle()), layout.Rect{X: 10, Y: 0, Width: 10, Height: 1})
	c.Place(NewLabel("ab", lipgloss.NewStyle()), layout.Rect{X: 0, Y: 0, Width: 10, Height: 1})
	c.Place(NewLabel("ef", lipgloss.NewStyle()), layout.Rect{X: 2, Y: 2, Width: 5, Height: 1})
	c.Place(blank{}, layout.Rect{X: 0, Y: 3, Width: 5, Height: 1})

	require.Equal(t, "ab        cd\n\n  ef\n", c.Render())
}

func TestCanvas_ClipsToCell(t *testing.T) {
	c := NewCanvas(10)
	c.Place(NewLabel("abcdefgh", lipgloss.NewStyle()), layout.Rect{Width: 3, Height: 1})
	c.Place(NewLabel("z", lipgloss.NewStyle()), layout.Rect{X: 4, Width: 3, Height: 1})

	require.Equal(t, "abc z", c.Render())
}

func TestCanvas_ResetAndLayout(t *testing.T) {
	c := NewCanvas(21)
	rows := []layout.Row{
		{{Weight: 1, Leaf: NewLabel("left", lipgloss.NewStyle())}, {Weight: 2, Leaf: NewLabel("right", lipgloss.NewStyle())}},
	}
	cfg := layout.Config{HorizontalSpacing: 1}

	layout.Apply(c, rows, cfg)
	layout.Apply(c, rows, cfg)

	require.Equal(t, []layout.Rect{{X: 0, Width: 6, Height: 1}, {X: 7, Width: 14, Height: 1}}, c.Frames())
	require.Equal(t, "left   right", c.Render())
}
