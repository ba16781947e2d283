package table

import "github.com/grindlemire/go-grid/internal/layout"

// Child is anything that can occupy a cell.
//
// Children are compared by identity, so implementations should be pointer
// types.
type Child interface {
	// PreferredSize returns the size the child wants given the available
	// space. Either axis of available may be layout.Infinite. Repeated calls
	// with the same input and no intervening state change must agree.
	PreferredSize(available layout.Size) layout.Size

	// Visible reports whether the child takes part in layout. An invisible
	// child measures as zero and is skipped when arranging, but keeps its
	// cell.
	Visible() bool

	// SetFrame repositions and resizes the child.
	SetFrame(frame layout.Rect)

	// Frame returns the frame last set on the child.
	Frame() layout.Rect
}

// Invalidator receives measurement invalidations from a child.
type Invalidator interface {
	InvalidateMeasure()
}

// Parented is implemented by children that keep a back-reference to the
// container holding them. The model sets it on insert and clears it on
// detach.
type Parented interface {
	SetParent(parent Invalidator)
}

// Repainter is implemented by children that can be asked to redraw without
// a frame change.
type Repainter interface {
	Repaint()
}
