package html

import "github.com/goliatone/go-formview/pkg/layout"

// DefaultColumns is the width of the grid forms are laid out on.
const DefaultColumns = 100

// Grid is a layout.Surface measured in grid columns. Spacing is left to CSS,
// so the layout runs without insets or gaps.
type Grid struct {
	columns int
	cells   []GridCell
}

// GridCell is a leaf placed on the grid.
type GridCell struct {
	Leaf  layout.Leaf
	Frame layout.Rect
}

// NewGrid creates a grid with the given number of columns.
func NewGrid(columns int) *Grid {
	if columns <= 0 {
		columns = DefaultColumns
	}
	return &Grid{columns: columns}
}

func (g *Grid) Width() int { return g.columns }
func (g *Grid) Reset()     { g.cells = g.cells[:0] }

func (g *Grid) Place(leaf layout.Leaf, frame layout.Rect) {
	g.cells = append(g.cells, GridCell{Leaf: leaf, Frame: frame})
}

// Cells returns the placed cells in placement order.
func (g *Grid) Cells() []GridCell {
	return append([]GridCell(nil), g.cells...)
}

func gridConfig() layout.Config {
	return layout.Config{DefaultSpacerHeight: 1}
}
