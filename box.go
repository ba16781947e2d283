package grid

var (
	_ Child     = (*Box)(nil)
	_ Parented  = (*Box)(nil)
	_ Repainter = (*Box)(nil)
)

// Box is a child with a fixed preferred size. It is useful as a spacer and
// as a stand-in for native widgets whose size is known up front.
type Box struct {
	size     Size
	hidden   bool
	frame    Rect
	parent   Invalidator
	repaints int
}

// NewBox creates a visible box with the given preferred size.
func NewBox(width, height int) *Box {
	return &Box{size: NewSize(width, height)}
}

// PreferredSize returns the box size regardless of the available space.
func (b *Box) PreferredSize(Size) Size { return b.size }

// SetSize changes the preferred size and invalidates the owner.
func (b *Box) SetSize(width, height int) {
	s := NewSize(width, height)
	if s == b.size {
		return
	}
	b.size = s
	b.invalidateParent()
}

// Visible reports whether the box takes part in layout.
func (b *Box) Visible() bool { return !b.hidden }

// SetVisible shows or hides the box. A hidden box keeps its cell.
func (b *Box) SetVisible(visible bool) {
	if visible == !b.hidden {
		return
	}
	b.hidden = !visible
	b.invalidateParent()
}

// SetFrame stores the frame assigned by the owner.
func (b *Box) SetFrame(frame Rect) { b.frame = frame }

// Frame returns the frame last assigned by the owner.
func (b *Box) Frame() Rect { return b.frame }

// SetParent links the box to its owner.
func (b *Box) SetParent(parent Invalidator) { b.parent = parent }

// Parent returns the owner, or nil once detached.
func (b *Box) Parent() Invalidator { return b.parent }

// Repaint records a repaint request.
func (b *Box) Repaint() { b.repaints++ }

// Repaints returns how many times the box was asked to repaint.
func (b *Box) Repaints() int { return b.repaints }

func (b *Box) invalidateParent() {
	if b.parent != nil {
		b.parent.InvalidateMeasure()
	}
}
