// Package grid arranges children in a fixed rows×columns table.
//
// Some rows and columns may be marked as scaled; they share whatever space
// is left once every unscaled row and column has been sized to its content.
// When nothing is marked, the last row and the last column absorb the
// leftover space.
//
// A [Table] answers two questions for its host: how big it would like to be
// ([Table.NaturalSize], usually asked with an unbounded size) and where each
// child goes once its own size is final ([Table.Arrange]). Tables implement
// [Child], so they nest.
//
// All calls must come from the goroutine that owns the widget tree.
package grid
