package table

import "github.com/grindlemire/go-grid/internal/layout"

// testChild is a Child with a fixed preferred size that records the
// available sizes it was measured with.
type testChild struct {
	pref     layout.Size
	hidden   bool
	frame    layout.Rect
	parent   Invalidator
	measured []layout.Size
	frames   int
}

func newTestChild(w, h int) *testChild {
	return &testChild{pref: layout.NewSize(w, h)}
}

func (c *testChild) PreferredSize(available layout.Size) layout.Size {
	c.measured = append(c.measured, available)
	return c.pref
}

func (c *testChild) Visible() bool { return !c.hidden }

func (c *testChild) SetFrame(r layout.Rect) {
	c.frame = r
	c.frames++
}

func (c *testChild) Frame() layout.Rect { return c.frame }

func (c *testChild) SetParent(p Invalidator) { c.parent = p }

// wrapChild behaves like wrapping text: it needs area/width rows at the
// given width.
type wrapChild struct {
	testChild
	area int
}

func (c *wrapChild) PreferredSize(available layout.Size) layout.Size {
	c.measured = append(c.measured, available)
	if available.WidthInfinite() || available.Width >= c.area {
		return layout.NewSize(c.area, 1)
	}
	w := max(available.Width, 1)
	return layout.NewSize(w, (c.area+w-1)/w)
}

type countingOwner struct{ n int }

func (o *countingOwner) InvalidateMeasure() { o.n++ }

func sum(v []int) int {
	total := 0
	for _, n := range v {
		total += n
	}
	return total
}

func mustAdd(m *Model, c Child, row, col int) {
	if err := m.Add(c, row, col); err != nil {
		panic(err)
	}
}
