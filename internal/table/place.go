package table

import "github.com/grindlemire/go-grid/internal/layout"

// Placement is the frame assigned to one visible, occupied cell.
type Placement struct {
	Row, Col int
	Child    Child
	Frame    layout.Rect
}

// Place walks the grid top-to-bottom, left-to-right and calls fn with the
// frame of every visible occupant. widths and heights come from a final
// Calculate pass. When flipY is set the y coordinate is mirrored within
// container so that row 0 sits at the bottom.
func Place(m *Model, widths, heights []int, container layout.Size, flipY bool, fn func(Placement)) {
	y := m.padding.Top
	for r := 0; r < m.rows; r++ {
		x := m.padding.Left
		for c := 0; c < m.cols; c++ {
			child := m.cells[r][c]
			if child != nil && child.Visible() {
				frame := layout.NewRect(x, y, widths[c], heights[r])
				if flipY {
					frame.Y = container.Height - frame.Y - frame.Height
				}
				fn(Placement{Row: r, Col: c, Child: child, Frame: frame})
			}
			x += widths[c] + m.spacing.Horizontal
		}
		y += heights[r] + m.spacing.Vertical
	}
}
