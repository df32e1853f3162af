// Package layout packs rows of weighted leaves into rectangles.
//
// Every row spans the container width minus its insets. Inside a row each
// element receives a share of the width proportional to its weight, with a
// fixed gap between neighbours; the last element absorbs the rounding
// remainder so the row always ends on the trailing inset. Rows stack
// vertically: a row starts below the first element of the previous row plus
// the vertical spacing. A row holding nothing but a spacer has no intrinsic
// height, so it receives Config.DefaultSpacerHeight.
//
// Compute is pure. Apply drives a Surface and always resets it first, which
// makes re-running a layout after rows change safe.
package layout
