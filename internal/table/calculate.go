package table

import "github.com/grindlemire/go-grid/internal/layout"

// Result is the outcome of a Calculate pass.
type Result struct {
	// Size is the natural size in measure mode and the available size
	// verbatim in final mode.
	Size layout.Size

	// Widths holds one extent per column, Heights one per row. In measure
	// mode scaled slots are left at zero.
	Widths  []int
	Heights []int
}

// Calculate measures the model against the available size.
//
// With final unset it answers "how big does this grid want to be": unscaled
// extents plus, for every scaled slot, room for the largest natural size
// seen among the scaled cells on that axis. available may be infinite on
// either axis.
//
// With final set it produces the authoritative extents for arranging.
// Leftover space is divided among the scaled slots in index order, the
// first slots receiving one extra unit each until the integer remainder is
// used up. available must be finite in final mode.
func Calculate(m *Model, available layout.Size, final bool) Result {
	widths := make([]int, m.cols)
	heights := make([]int, m.rows)

	required := m.padding.Size().Add(m.spacing.Gaps(m.cols, m.rows))
	numScaled := layout.Size{Width: m.colScale.Count(), Height: m.rowScale.Count()}

	// Pass 1: cells on neither a scaled row nor a scaled column, measured
	// against the full available size.
	for r := 0; r < m.rows; r++ {
		yscaled := m.rowScale.IsScaled(r)
		for c := 0; c < m.cols; c++ {
			if yscaled || m.colScale.IsScaled(c) {
				continue
			}
			size, ok := measure(m.cells[r][c], available)
			if !ok {
				continue
			}
			grow(widths, c, size.Width, &required.Width)
			grow(heights, r, size.Height, &required.Height)
		}
	}

	remaining := layout.Size{
		Width:  share(available.Width, required.Width, numScaled.Width),
		Height: share(available.Height, required.Height, numScaled.Height),
	}

	// Pass 2: cells touching a scaled axis. The scaled axis is offered its
	// share of the leftover space; the unscaled axis is unconstrained and
	// grows its slot as in pass 1.
	var maxScaled layout.Size
	for r := 0; r < m.rows; r++ {
		yscaled := m.rowScale.IsScaled(r)
		for c := 0; c < m.cols; c++ {
			xscaled := m.colScale.IsScaled(c)
			if !xscaled && !yscaled {
				continue
			}
			// Doubly scaled cells take whatever the distribution gives them.
			if final && xscaled && yscaled {
				continue
			}

			avail := layout.Unbounded()
			if xscaled {
				avail.Width = remaining.Width
			}
			if yscaled {
				avail.Height = remaining.Height
			}
			size, ok := measure(m.cells[r][c], avail)
			if !ok {
				continue
			}

			if xscaled {
				maxScaled.Width = max(maxScaled.Width, size.Width)
			} else {
				grow(widths, c, size.Width, &required.Width)
			}
			if yscaled {
				maxScaled.Height = max(maxScaled.Height, size.Height)
			} else {
				grow(heights, r, size.Height, &required.Height)
			}
		}
	}

	if !final {
		natural := required.Add(layout.Size{
			Width:  mulAxis(maxScaled.Width, numScaled.Width),
			Height: mulAxis(maxScaled.Height, numScaled.Height),
		})
		return Result{Size: natural, Widths: widths, Heights: heights}
	}

	scaledSpace := available.Sub(required)
	distribute(widths, m.colScale, scaledSpace.Width)
	distribute(heights, m.rowScale, scaledSpace.Height)

	return Result{Size: available, Widths: widths, Heights: heights}
}

// measure returns the child's preferred size, or false for an empty cell or
// an invisible child.
func measure(child Child, available layout.Size) (layout.Size, bool) {
	if child == nil || !child.Visible() {
		return layout.Size{}, false
	}
	return child.PreferredSize(available), true
}

// grow widens extents[i] to at least v and adds the growth to required.
func grow(extents []int, i, v int, required *int) {
	if v <= extents[i] {
		return
	}
	*required += v - extents[i]
	extents[i] = v
}

// share is the per-slot portion of the space left on an axis. An axis with
// no scaled slots has nothing to share.
func share(available, required, n int) int {
	if n == 0 {
		return 0
	}
	if available >= layout.Infinite {
		return layout.Infinite
	}
	return max(available-required, 0) / n
}

func mulAxis(v, n int) int {
	if v >= layout.Infinite {
		return layout.Infinite
	}
	return min(v*n, layout.Infinite)
}

// distribute assigns space to the scaled slots of an axis. The remainder of
// the integer division goes one unit at a time to the lowest indices, so
// the scaled extents always add up to space exactly.
func distribute(extents []int, scale AxisScale, space int) {
	n := scale.Count()
	if n == 0 {
		return
	}
	each := space / n
	rounding := max(space-each*n, 0)
	for i := range extents {
		if !scale.IsScaled(i) {
			continue
		}
		extents[i] = each
		if rounding > 0 {
			extents[i]++
			rounding--
		}
	}
}
