package terminal

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formview/pkg/layout"
)

// Renderer is implemented by leaves that can draw themselves into a cell of a
// given width.
type Renderer interface {
	Render(width int) string
}

type placedLeaf struct {
	leaf  layout.Leaf
	frame layout.Rect
}

// Canvas is a layout.Surface measured in terminal cells. Placed leaves are
// drawn when Render is called, so it always reflects their current state.
type Canvas struct {
	width  int
	placed []placedLeaf
}

// NewCanvas creates a canvas width cells wide.
func NewCanvas(width int) *Canvas {
	return &Canvas{width: width}
}

func (c *Canvas) Width() int { return c.width }

// SetWidth changes the width used by the next layout pass.
func (c *Canvas) SetWidth(width int) {
	if width < 0 {
		width = 0
	}
	c.width = width
}

func (c *Canvas) Reset() { c.placed = c.placed[:0] }

func (c *Canvas) Place(leaf layout.Leaf, frame layout.Rect) {
	c.placed = append(c.placed, placedLeaf{leaf: leaf, frame: frame})
}

// Frames returns the rectangles placed so far in placement order.
func (c *Canvas) Frames() []layout.Rect {
	frames := make([]layout.Rect, len(c.placed))
	for i, p := range c.placed {
		frames[i] = p.frame
	}
	return frames
}

// Render draws every placed leaf at its rectangle. Leaves that are not
// Renderers leave their cell blank. Trailing spaces are trimmed.
func (c *Canvas) Render() string {
	if len(c.placed) == 0 {
		return ""
	}
	items := append([]placedLeaf(nil), c.placed...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].frame.Y == items[j].frame.Y {
			return items[i].frame.X < items[j].frame.X
		}
		return items[i].frame.Y < items[j].frame.Y
	})

	var lines []string
	for _, item := range items {
		frame := item.frame
		if frame.Width <= 0 || frame.Height <= 0 || frame.Y < 0 || frame.X < 0 {
			continue
		}
		for len(lines) < frame.Bottom() {
			lines = append(lines, "")
		}
		block := cell(item.leaf, frame.Width, frame.Height)
		for k, text := range block {
			row := frame.Y + k
			lines[row] = padRight(lines[row], frame.X) + text
		}
	}

	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n")
}

func cell(leaf layout.Leaf, width, height int) []string {
	var content string
	if r, ok := leaf.(Renderer); ok {
		content = r.Render(width)
	}
	src := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		text := ""
		if i < len(src) {
			text = lipgloss.NewStyle().MaxWidth(width).Render(src[i])
		}
		out[i] = padRight(text, width)
	}
	return out
}
