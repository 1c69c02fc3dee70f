package claims

import (
	"errors"

	"github.com/katalvlaran/lvlgrid/geom"
)

// Sentinel errors for claim operations.
var (
	// ErrNoUntouchedClaim indicates that every claim overlaps at least one other.
	ErrNoUntouchedClaim = errors.New("claims: no untouched claim")
	// ErrAmbiguousUntouchedClaim indicates more than one claim is isolated.
	ErrAmbiguousUntouchedClaim = errors.New("claims: more than one untouched claim")
	// ErrMalformedClaim indicates a record does not match "#<id> @ <x>,<y>: <w>x<h>".
	ErrMalformedClaim = errors.New("claims: malformed claim")
)

// Claim is a rectangle [Origin.X, Origin.X+Width) × [Origin.Y, Origin.Y+Height).
type Claim struct {
	ID            int
	Origin        geom.Point
	Width, Height int
}

// Bounds returns the inclusive box of cells covered by c. A claim with zero
// width or height covers nothing and returns an empty box.
func (c Claim) Bounds() geom.Bounds {
	if c.Width <= 0 || c.Height <= 0 {
		return geom.EmptyBounds()
	}
	return geom.Bounds{
		Top:    c.Origin.Y,
		Bottom: c.Origin.Y + c.Height - 1,
		Left:   c.Origin.X,
		Right:  c.Origin.X + c.Width - 1,
	}
}

// boundsOf is the union of every claim's bounds.
func boundsOf(cs []Claim) geom.Bounds {
	b := geom.EmptyBounds()
	for _, c := range cs {
		b = b.Union(c.Bounds())
	}
	return b
}
