package table

// NoImplicit is the ImplicitLast value of an axis that has at least one
// explicitly scaled slot.
const NoImplicit = -1

// AxisScale holds the scale flags of one axis (rows or columns) together
// with the fallback rule: when no slot is flagged, the last slot is scaled
// implicitly so leftover space always has somewhere to go.
type AxisScale struct {
	flags        []bool
	implicitLast int
}

// NewAxisScale returns an axis of n unflagged slots.
func NewAxisScale(n int) AxisScale {
	s := AxisScale{flags: make([]bool, max(n, 0))}
	s.update()
	return s
}

// Len returns the number of slots on the axis.
func (s AxisScale) Len() int {
	return len(s.flags)
}

// IsScaled reports whether slot i absorbs leftover space, either because it
// is flagged or because it is the implicit fallback.
func (s AxisScale) IsScaled(i int) bool {
	if i < 0 || i >= len(s.flags) {
		return false
	}
	return s.flags[i] || i == s.implicitLast
}

// Flagged reports whether slot i was explicitly marked as scaled.
func (s AxisScale) Flagged(i int) bool {
	return i >= 0 && i < len(s.flags) && s.flags[i]
}

// ImplicitLast returns the implicitly scaled slot, or NoImplicit.
func (s AxisScale) ImplicitLast() int {
	return s.implicitLast
}

// Count returns the number of scaled slots.
func (s AxisScale) Count() int {
	if s.implicitLast != NoImplicit {
		return 1
	}
	n := 0
	for _, f := range s.flags {
		if f {
			n++
		}
	}
	return n
}

// set updates slot i. The caller has range-checked i.
func (s *AxisScale) set(i int, scaled bool) {
	s.flags[i] = scaled
	s.update()
}

func (s *AxisScale) update() {
	s.implicitLast = len(s.flags) - 1
	for _, f := range s.flags {
		if f {
			s.implicitLast = NoImplicit
			return
		}
	}
	if len(s.flags) == 0 {
		s.implicitLast = NoImplicit
	}
}
