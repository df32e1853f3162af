package layout

// Leaf is anything that can occupy a rectangle. Its intrinsic height decides
// the height of the frame it receives; widths always come from the row.
type Leaf interface {
	IntrinsicHeight() int
}

// Rect is a frame in surface units (points, cells, percent, ...).
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right reports the trailing edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom reports the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Insets pad the container on each side.
type Insets struct {
	Top    int `json:"top" yaml:"top"`
	Left   int `json:"left" yaml:"left"`
	Bottom int `json:"bottom" yaml:"bottom"`
	Right  int `json:"right" yaml:"right"`
}

// Item is one element of a row. Spacers carry no leaf.
type Item struct {
	Weight int
	Leaf   Leaf
	Spacer bool
}

// Row is an ordered list of items laid out left to right.
type Row []Item

// Placement is the computed frame of one item.
type Placement struct {
	Row    int
	Index  int
	Leaf   Leaf
	Spacer bool
	Frame  Rect
}

// Surface receives placed leaves. Reset must detach everything placed by a
// previous pass.
type Surface interface {
	Width() int
	Reset()
	Place(leaf Leaf, frame Rect)
}
