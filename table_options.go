package grid

// Option configures a Table.
type Option func(*Table)

// Origin selects where row 0 is placed.
type Origin int

const (
	// OriginTopLeft grows rows downward from the top edge (default).
	OriginTopLeft Origin = iota
	// OriginBottomLeft mirrors y so row 0 sits at the bottom edge, for
	// coordinate systems whose y axis points up.
	OriginBottomLeft
)

// WithPadding sets the insets around the grid.
func WithPadding(p Edges) Option {
	return func(t *Table) {
		t.model.SetPadding(p)
	}
}

// WithSpacing sets the gaps between columns and rows.
func WithSpacing(horizontal, vertical int) Option {
	return func(t *Table) {
		t.model.SetSpacing(Spacing{Horizontal: horizontal, Vertical: vertical})
	}
}

// WithOrigin sets the coordinate origin used when arranging.
func WithOrigin(o Origin) Option {
	return func(t *Table) {
		t.origin = o
	}
}

// WithOnInvalidate registers a hook called every time the table's
// measurement is invalidated and the invalidation is not deferred. Hosts
// use it on the root table to schedule the next layout pass.
func WithOnInvalidate(fn func()) Option {
	return func(t *Table) {
		t.onInvalidate = fn
	}
}
