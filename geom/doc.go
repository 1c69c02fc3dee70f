// Package geom provides the integer plane primitives shared by the claim and
// nearest-point engines of github.com/katalvlaran/lvlgrid.
//
// What:
//
//   - Point is a comparable (x,y) value; it doubles as a map key.
//   - Bounds is an inclusive axis-aligned box, usually derived from a point set.
//   - Dist / AbsDiff compute Manhattan distances over any signed integer type.
//   - ParsePoint reads the "<x>,<y>" record format.
//
// Complexity:
//
//   - BoundsOf: O(n) over the input points.
//   - Bounds.Cells: O(W×H).
//
// Errors:
//
//   - ErrNoPoints: bounds requested for an empty point list.
//   - ErrMalformedPoint: a record does not match "<x>,<y>".
package geom
