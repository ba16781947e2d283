// Package layout holds the geometry value types shared by the grid engine.
//
// Sizes are measured in integer units. An axis may be unconstrained, which is
// expressed with the [Infinite] sentinel; arithmetic helpers on [Size] keep
// that sentinel absorbing so callers never overflow while subtracting
// padding from an unbounded request.
package layout
