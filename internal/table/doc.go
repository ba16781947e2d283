// Package table implements the grid measurement and arrangement engine.
//
// A [Model] is a fixed rows×cols matrix of optional [Child] occupants with
// per-row and per-column scale flags. [Calculate] measures the model in two
// passes: cells on unscaled rows and columns first, then cells that sit on
// a scaled row or column, which are measured against their share of the
// leftover space. In final mode the leftover space is split across the
// scaled slots so the extents on each axis add up to exactly the available
// size. [Place] turns final extents into per-cell frames.
//
// The engine is pure computation and assumes serialized access; caching and
// invalidation are the caller's concern.
package table
