package grid

import (
	"github.com/grindlemire/go-grid/internal/debug"
	"github.com/grindlemire/go-grid/internal/table"
)

var (
	_ Child       = (*Table)(nil)
	_ Parented    = (*Table)(nil)
	_ Invalidator = (*Table)(nil)
)

// passState tracks which layout pass a Table is running.
type passState uint8

const (
	stateIdle passState = iota
	stateMeasuring
	stateArranging
)

func (s passState) String() string {
	switch s {
	case stateMeasuring:
		return "measuring"
	case stateArranging:
		return "arranging"
	default:
		return "idle"
	}
}

// Stats counts the work a Table has done. It is meant for tests and
// diagnostics.
type Stats struct {
	Measures      int // natural-size calculations that missed the cache
	CacheHits     int // natural-size queries answered from the cache
	Arranges      int // completed arrangement passes
	FrameUpdates  int // SetFrame calls issued to children
	Repaints      int // Repaint calls issued to children with unchanged frames
	Invalidations int // invalidations applied (after deferral)
	Relayouts     int // nested tables re-arranged in place with an unchanged frame
	Deferred      int // invalidations raised mid-pass and applied afterwards
	NestedSkipped int // Arrange calls ignored because a pass was running
}

// Table lays out children in a fixed grid of cells.
type Table struct {
	model  *table.Model
	origin Origin

	// Tree link (weak: the parent owns this table, not the reverse)
	parent       Invalidator
	onInvalidate func()

	// Own placement when nested in another table
	frame  Rect
	hidden bool

	cache measureCache

	// Last arrangement
	arranged    Size
	hasArranged bool
	stale       bool // invalidated since the last Arrange
	widths      []int
	heights     []int

	state    passState
	deferred int

	stats Stats
}

// NewTable creates a table with a fixed number of columns and rows.
// Negative counts are treated as zero.
func NewTable(cols, rows int, opts ...Option) *Table {
	t := &Table{}
	t.model = table.NewModel(cols, rows, t)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.model.Rows() }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.model.Cols() }

// At returns the child at (row, col), or nil.
func (t *Table) At(row, col int) Child { return t.model.At(row, col) }

// Find returns the cell holding child.
func (t *Table) Find(child Child) (row, col int, ok bool) { return t.model.Find(child) }

// Add places child at (row, col), detaching whatever was there. A nil child
// clears the cell. Coordinates outside the grid return an error wrapping
// ErrIndexOutOfRange and leave the table unchanged.
func (t *Table) Add(child Child, row, col int) error {
	if err := t.model.Add(child, row, col); err != nil {
		return err
	}
	t.InvalidateMeasure()
	return nil
}

// Move places child at (row, col), vacating the cell it held before.
// Moving to the cell it already occupies is legal and still invalidates.
func (t *Table) Move(child Child, row, col int) error {
	if err := t.model.Move(child, row, col); err != nil {
		return err
	}
	t.InvalidateMeasure()
	return nil
}

// Remove detaches child. Removing a child that is not in the table is a
// no-op.
func (t *Table) Remove(child Child) {
	if t.model.Remove(child) {
		t.InvalidateMeasure()
	}
}

// SetRowScale marks row as absorbing leftover height.
func (t *Table) SetRowScale(row int, scaled bool) error {
	if err := t.model.SetRowScale(row, scaled); err != nil {
		return err
	}
	t.InvalidateMeasure()
	return nil
}

// SetColumnScale marks col as absorbing leftover width.
func (t *Table) SetColumnScale(col int, scaled bool) error {
	if err := t.model.SetColumnScale(col, scaled); err != nil {
		return err
	}
	t.InvalidateMeasure()
	return nil
}

// IsRowScaled reports whether row absorbs leftover height, including the
// implicit last-row fallback.
func (t *Table) IsRowScaled(row int) bool { return t.model.RowScale().IsScaled(row) }

// IsColumnScaled reports whether col absorbs leftover width, including the
// implicit last-column fallback.
func (t *Table) IsColumnScaled(col int) bool { return t.model.ColumnScale().IsScaled(col) }

// Padding returns the insets around the grid.
func (t *Table) Padding() Edges { return t.model.Padding() }

// SetPadding changes the insets around the grid.
func (t *Table) SetPadding(p Edges) {
	if p == t.model.Padding() {
		return
	}
	t.model.SetPadding(p)
	t.InvalidateMeasure()
}

// Spacing returns the gaps between columns and rows.
func (t *Table) Spacing() Spacing { return t.model.Spacing() }

// SetSpacing changes the gaps between columns and rows.
func (t *Table) SetSpacing(horizontal, vertical int) {
	s := Spacing{Horizontal: horizontal, Vertical: vertical}
	if s == t.model.Spacing() {
		return
	}
	t.model.SetSpacing(s)
	t.InvalidateMeasure()
}

// Origin returns the coordinate origin used when arranging.
func (t *Table) Origin() Origin { return t.origin }

// SetOrigin changes the coordinate origin. Frames change on the next
// Arrange.
func (t *Table) SetOrigin(o Origin) { t.origin = o }

// Stats returns the work counters.
func (t *Table) Stats() Stats { return t.stats }

// Each calls fn for every occupied cell in row-major order.
func (t *Table) Each(fn func(row, col int, child Child)) { t.model.Each(fn) }

// InvalidateMeasure drops the cached natural size and tells the parent.
// Calls made while a measure or arrange pass is running are deferred until
// the pass completes. Calling it repeatedly is harmless.
func (t *Table) InvalidateMeasure() {
	if t.state != stateIdle {
		t.deferred++
		t.stats.Deferred++
		debug.Log("grid: invalidation deferred while %s", t.state)
		return
	}
	t.invalidate()
}

func (t *Table) invalidate() {
	t.cache.clear()
	t.stale = true
	t.stats.Invalidations++
	if t.onInvalidate != nil {
		t.onInvalidate()
	}
	if t.parent != nil {
		t.parent.InvalidateMeasure()
	}
}

// layoutPending reports whether the table must be arranged again even if
// its frame is unchanged.
func (t *Table) layoutPending() bool {
	return t.stale || !t.hasArranged
}

// enter switches to state and returns the state to restore on exit.
func (t *Table) enter(s passState) passState {
	prev := t.state
	t.state = s
	return prev
}

// exit restores prev and, once the table is idle again, applies the
// invalidations deferred during the pass.
func (t *Table) exit(prev passState) {
	t.state = prev
	if prev != stateIdle || t.deferred == 0 {
		return
	}
	debug.Log("grid: applying %d deferred invalidation(s)", t.deferred)
	t.deferred = 0
	t.invalidate()
}

// --- Child implementation, for nesting ---

// PreferredSize returns the natural size for the available space.
func (t *Table) PreferredSize(available Size) Size {
	return t.NaturalSize(available)
}

// Visible reports whether the table takes part in its parent's layout.
func (t *Table) Visible() bool { return !t.hidden }

// SetVisible shows or hides the table within its parent.
func (t *Table) SetVisible(visible bool) {
	if visible == !t.hidden {
		return
	}
	t.hidden = !visible
	if t.parent != nil {
		t.parent.InvalidateMeasure()
	}
}

// SetFrame stores the frame assigned by the parent and arranges the
// table's own children within it. Child frames are relative to the
// table's origin.
func (t *Table) SetFrame(frame Rect) {
	t.frame = frame
	t.Arrange(frame.Size())
}

// Frame returns the frame last assigned by the parent.
func (t *Table) Frame() Rect { return t.frame }

// SetParent links the table to the container holding it.
func (t *Table) SetParent(parent Invalidator) { t.parent = parent }

// Parent returns the container holding the table, or nil.
func (t *Table) Parent() Invalidator { return t.parent }
