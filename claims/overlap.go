package claims

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/geom"
	"github.com/katalvlaran/lvlgrid/grid"
)

// CountOverlaps returns the number of cells covered by at least two claims.
// A cell is counted once, on its transition from one coverer to two, so the
// result does not depend on claim order.
func CountOverlaps(cs []Claim) int {
	coverers := grid.NewArena[int](boundsOf(cs))
	overlaps := 0
	for _, c := range cs {
		c.Bounds().Cells(func(p geom.Point) {
			n := coverers.Ptr(p)
			if *n == 1 {
				overlaps++
			}
			*n++
		})
	}

	return overlaps
}

// FindUntouched returns the id of the only claim that shares no cell with
// any other claim.
//
// Each cell remembers the last claim written to it. When a claim lands on a
// cell already held by a different claim, both claims are dropped from the
// candidate set: the earlier writer is just as overlapped as the newcomer.
//
// Returns ErrNoUntouchedClaim when no candidate survives and
// ErrAmbiguousUntouchedClaim when several do.
func FindUntouched(cs []Claim) (int, error) {
	// Cells hold slot = claim index + 1, leaving 0 for "empty" even when a
	// claim id is 0.
	owner := grid.NewArena[int](boundsOf(cs))
	candidates := make(map[int]struct{}, len(cs))
	for i := range cs {
		candidates[i+1] = struct{}{}
	}

	for i, c := range cs {
		slot := i + 1
		c.Bounds().Cells(func(p geom.Point) {
			cell := owner.Ptr(p)
			if *cell != 0 && *cell != slot {
				delete(candidates, *cell)
				delete(candidates, slot)
			}
			*cell = slot
		})
	}

	switch len(candidates) {
	case 0:
		return 0, ErrNoUntouchedClaim
	case 1:
		for slot := range candidates {
			return cs[slot-1].ID, nil
		}
	}
	return 0, fmt.Errorf("%w: %d candidates", ErrAmbiguousUntouchedClaim, len(candidates))
}
