package geom

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for geom operations.
var (
	// ErrNoPoints indicates bounds were requested for an empty point list.
	ErrNoPoints = errors.New("geom: at least one point is required")
	// ErrMalformedPoint indicates a point record does not match "<x>,<y>".
	ErrMalformedPoint = errors.New("geom: malformed point")
)

// Point is an integer grid location. Points compare structurally and are
// safe to use as map keys.
type Point struct {
	X, Y int
}

// AbsDiff returns |a-b|.
func AbsDiff[T constraints.Signed](a, b T) T {
	v := a - b
	if v < 0 {
		v = -v
	}
	return v
}

// Dist returns the Manhattan distance between p and q.
func (p Point) Dist(q Point) int {
	return AbsDiff(p.X, q.X) + AbsDiff(p.Y, q.Y)
}

// Add returns p translated by (dx,dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
