// Package claims implements rectangle-overlap accounting over a set of
// rectangular claims laid on an integer grid.
//
// What:
//
//   - CountOverlaps counts the cells covered by two or more claims, each such
//     cell once regardless of how many claims cover it.
//   - FindUntouched returns the id of the single claim that shares no cell with
//     any other claim.
//   - ParseClaim reads the "#<id> @ <x>,<y>: <w>x<h>" record format.
//
// The working grid is a grid.Arena sized from the union of the claims'
// bounds, so arbitrary (including negative) origins are accepted.
//
// Complexity:
//
//   - CountOverlaps: O(A + Σ w·h), where A is the arena area.
//   - FindUntouched: O(A + Σ w·h + n).
//
// Errors:
//
//   - ErrNoUntouchedClaim: every claim overlaps another.
//   - ErrAmbiguousUntouchedClaim: more than one claim is isolated.
//   - ErrMalformedClaim: a record does not match the claim grammar.
package claims
