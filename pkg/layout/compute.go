package layout

// Compute lays rows out inside a container of the given width. Empty rows are
// skipped. Weights below 1 count as 1.
func Compute(rows []Row, width int, cfg Config) []Placement {
	var placements []Placement
	y := cfg.Insets.Top

	for ri, row := range rows {
		if len(row) == 0 {
			continue
		}

		avail := width - cfg.Insets.Left - cfg.Insets.Right - cfg.HorizontalSpacing*(len(row)-1)
		if avail < 0 {
			avail = 0
		}

		total := 0
		tallest := 0
		for _, item := range row {
			total += weightOf(item)
			if !item.Spacer {
				if h := leafHeight(item.Leaf); h > tallest {
					tallest = h
				}
			}
		}

		x := cfg.Insets.Left
		used := 0
		firstBottom := y
		for i, item := range row {
			w := avail
			if len(row) > 1 {
				if i == len(row)-1 {
					w = avail - used
				} else {
					w = avail * weightOf(item) / total
				}
			}
			used += w

			h := leafHeight(item.Leaf)
			if item.Spacer {
				h = tallest
				if len(row) == 1 {
					h = cfg.DefaultSpacerHeight
				}
			}

			frame := Rect{X: x, Y: y, Width: w, Height: h}
			placements = append(placements, Placement{
				Row:    ri,
				Index:  i,
				Leaf:   item.Leaf,
				Spacer: item.Spacer,
				Frame:  frame,
			})
			if i == 0 {
				firstBottom = frame.Bottom()
			}
			x += w + cfg.HorizontalSpacing
		}

		y = firstBottom + cfg.VerticalSpacing
	}

	return placements
}

// Apply resets the surface and places every non-spacer item on it. The
// computed placements, spacers included, are returned.
func Apply(surface Surface, rows []Row, cfg Config) []Placement {
	if surface == nil {
		return nil
	}
	surface.Reset()
	placements := Compute(rows, surface.Width(), cfg)
	for _, p := range placements {
		if p.Spacer || p.Leaf == nil {
			continue
		}
		surface.Place(p.Leaf, p.Frame)
	}
	return placements
}

// Height reports the content height of a set of placements including the
// bottom inset.
func Height(placements []Placement, cfg Config) int {
	bottom := 0
	for _, p := range placements {
		if b := p.Frame.Bottom(); b > bottom {
			bottom = b
		}
	}
	if len(placements) == 0 {
		return cfg.Insets.Top + cfg.Insets.Bottom
	}
	return bottom + cfg.Insets.Bottom
}

func weightOf(item Item) int {
	if item.Weight < 1 {
		return 1
	}
	return item.Weight
}

func leafHeight(leaf Leaf) int {
	if leaf == nil {
		return 0
	}
	if h := leaf.IntrinsicHeight(); h > 0 {
		return h
	}
	return 0
}
