package layout

// Edges holds insets for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// Size returns the total inset as a Size.
func (e Edges) Size() Size {
	return Size{Width: e.Horizontal(), Height: e.Vertical()}
}

// Spacing is the gap inserted between adjacent columns (Horizontal) and
// adjacent rows (Vertical).
type Spacing struct {
	Horizontal, Vertical int
}

// Gaps returns the total spacing consumed by cols columns and rows rows.
// An axis with fewer than two slots has no gaps.
func (s Spacing) Gaps(cols, rows int) Size {
	return Size{
		Width:  s.Horizontal * max(cols-1, 0),
		Height: s.Vertical * max(rows-1, 0),
	}
}
