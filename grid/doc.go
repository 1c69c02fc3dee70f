// Package grid provides Arena, a dense row-major cell store laid over an
// arbitrary geom.Bounds.
//
// What:
//
//   - Cells are addressed by absolute coordinates; the arena subtracts
//     Bounds.Left / Bounds.Top internally, so negative coordinates work and
//     no fixed-size array is needed.
//   - Coordinate converts a row-major index back to a geom.Point.
//
// Complexity:
//
//   - NewArena: O(W×H) time and memory.
//   - At, Set, Ptr, InBounds, Coordinate: O(1).
//
// Accessing a cell outside the bounds panics, like an out-of-range slice
// index; use InBounds when the caller cannot guarantee containment.
package grid
