package grid

import (
	"slices"

	"github.com/grindlemire/go-grid/internal/debug"
	"github.com/grindlemire/go-grid/internal/table"
)

// Arrange computes the final column widths and row heights for size and
// pushes a frame to every visible child. A child whose frame is unchanged
// is not touched, except that it is asked to repaint when its frame reached
// outside the previous table bounds. A nested table whose frame is
// unchanged is arranged again in place when it was invalidated since its
// last pass.
//
// Calling Arrange again with the same size and no intervening change
// produces the same frames. An Infinite axis is replaced by the natural
// size on that axis. Arrange calls made while this table is already
// arranging are ignored and a fresh invalidation is raised once the running
// pass completes.
func (t *Table) Arrange(size Size) {
	if t.state == stateArranging {
		t.stats.NestedSkipped++
		t.InvalidateMeasure()
		debug.Log("grid: nested arrange %v ignored", size)
		return
	}

	size = t.resolveFinal(size)

	prev := t.enter(stateArranging)
	defer t.exit(prev)

	if t.hasArranged && size != t.arranged {
		t.cache.clear()
	}
	t.stale = false

	res := table.Calculate(t.model, size, true)

	bounds := NewRect(0, 0, t.arranged.Width, t.arranged.Height)
	hadBounds := t.hasArranged
	flip := t.origin == OriginBottomLeft

	table.Place(t.model, res.Widths, res.Heights, size, flip, func(p table.Placement) {
		old := p.Child.Frame()
		if old != p.Frame {
			p.Child.SetFrame(p.Frame)
			t.stats.FrameUpdates++
			return
		}
		if nested, ok := p.Child.(*Table); ok && nested.layoutPending() {
			nested.Arrange(p.Frame.Size())
			t.stats.Relayouts++
		}
		if hadBounds && !bounds.ContainsRect(old) {
			if r, ok := p.Child.(Repainter); ok {
				r.Repaint()
				t.stats.Repaints++
			}
		}
	})

	t.arranged, t.hasArranged = size, true
	t.widths, t.heights = res.Widths, res.Heights
	t.stats.Arranges++
	debug.Log("grid: arrange %v widths=%v heights=%v", size, res.Widths, res.Heights)
}

// resolveFinal replaces unconstrained axes with the natural size.
func (t *Table) resolveFinal(size Size) Size {
	if !size.HasInfinite() {
		return size
	}
	natural := t.NaturalSize(size)
	if size.WidthInfinite() {
		size.Width = natural.Width
	}
	if size.HeightInfinite() {
		size.Height = natural.Height
	}
	return size
}

// Extents returns the column widths and row heights of the last Arrange.
// Both are nil before the first Arrange.
func (t *Table) Extents() (widths, heights []int) {
	return slices.Clone(t.widths), slices.Clone(t.heights)
}

// ArrangedSize returns the size passed to the last Arrange.
func (t *Table) ArrangedSize() (Size, bool) {
	return t.arranged, t.hasArranged
}
