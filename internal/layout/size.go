package layout

import (
	"fmt"
	"math"
)

// Infinite marks an axis with no size constraint.
const Infinite = math.MaxInt32

// Size is a width/height pair.
type Size struct {
	Width, Height int
}

// NewSize creates a Size.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Unbounded returns a Size that is infinite on both axes.
func Unbounded() Size {
	return Size{Width: Infinite, Height: Infinite}
}

// WidthInfinite reports whether the width axis is unconstrained.
func (s Size) WidthInfinite() bool {
	return s.Width >= Infinite
}

// HeightInfinite reports whether the height axis is unconstrained.
func (s Size) HeightInfinite() bool {
	return s.Height >= Infinite
}

// IsInfinite reports whether both axes are unconstrained.
func (s Size) IsInfinite() bool {
	return s.WidthInfinite() && s.HeightInfinite()
}

// HasInfinite reports whether either axis is unconstrained.
func (s Size) HasInfinite() bool {
	return s.WidthInfinite() || s.HeightInfinite()
}

// Add returns s + o per axis. Infinite stays infinite.
func (s Size) Add(o Size) Size {
	return Size{Width: addAxis(s.Width, o.Width), Height: addAxis(s.Height, o.Height)}
}

// Sub returns s - o per axis, floored at zero. Infinite minus a finite
// value stays infinite.
func (s Size) Sub(o Size) Size {
	return Size{Width: subAxis(s.Width, o.Width), Height: subAxis(s.Height, o.Height)}
}

// String formats the size as WxH, using "inf" for unconstrained axes.
func (s Size) String() string {
	return axisString(s.Width, s.WidthInfinite()) + "x" + axisString(s.Height, s.HeightInfinite())
}

func axisString(v int, inf bool) string {
	if inf {
		return "inf"
	}
	return fmt.Sprint(v)
}

func addAxis(a, b int) int {
	if a >= Infinite || b >= Infinite {
		return Infinite
	}
	return min(a+b, Infinite)
}

func subAxis(a, b int) int {
	if a >= Infinite {
		return Infinite
	}
	if a-b < 0 {
		return 0
	}
	return a - b
}
