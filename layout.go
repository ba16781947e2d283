// layout.go re-exports geometry and engine types from internal packages.
// Any changes to internal/layout or internal/table types must be mirrored here.
package grid

import (
	"github.com/grindlemire/go-grid/internal/layout"
	"github.com/grindlemire/go-grid/internal/table"
)

// Size represents a width/height pair. Either axis may be Infinite.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents insets on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Spacing holds the gaps between columns (Horizontal) and rows (Vertical).
type Spacing = layout.Spacing

// Infinite marks an unconstrained axis in a Size.
const Infinite = layout.Infinite

// Child is anything that can be placed in a cell.
type Child = table.Child

// Invalidator receives measurement invalidations from a child.
type Invalidator = table.Invalidator

// Parented is implemented by children that track the container holding them.
type Parented = table.Parented

// Repainter is implemented by children that can redraw without a frame change.
type Repainter = table.Repainter

// IndexError describes a rejected grid coordinate.
type IndexError = table.IndexError

// ErrIndexOutOfRange is returned when a row or column lies outside the grid.
var ErrIndexOutOfRange = table.ErrIndexOutOfRange

// NewSize creates a Size.
func NewSize(width, height int) Size {
	return layout.NewSize(width, height)
}

// Unbounded returns a Size that is infinite on both axes.
func Unbounded() Size {
	return layout.Unbounded()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
