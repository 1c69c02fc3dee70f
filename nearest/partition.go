package nearest

import (
	"math"

	"github.com/katalvlaran/lvlgrid/geom"
)

// Owner returns the point strictly nearest to cell. ok is false when the
// minimum distance is shared by two or more points, or points is empty.
// Duplicate points always tie with each other.
// Complexity: O(n).
func Owner(cell geom.Point, points []geom.Point) (owner geom.Point, ok bool) {
	best := math.MaxInt
	for _, p := range points {
		d := p.Dist(cell)
		switch {
		case d < best:
			best, owner, ok = d, p, true
		case d == best:
			ok = false
		}
	}
	if !ok {
		return geom.Point{}, false
	}
	return owner, true
}

// Partition assigns every cell of the points' bounding box (inclusive on all
// four sides) to its uniquely nearest point.
// Returns geom.ErrNoPoints if points is empty.
// Complexity: O(W×H×n).
func Partition(points []geom.Point) (*Regions, error) {
	b, err := geom.BoundsOf(points)
	if err != nil {
		return nil, err
	}
	rs := &Regions{Bounds: b, BySite: make(map[geom.Point]*Region, len(points))}
	b.Cells(func(cell geom.Point) {
		site, ok := Owner(cell, points)
		if !ok {
			rs.Tied++
			return
		}
		r := rs.BySite[site]
		if r == nil {
			r = &Region{Site: site}
			rs.BySite[site] = r
		}
		r.Area++
		if b.OnEdge(cell) {
			r.Unbounded = true
		}
	})

	return rs, nil
}

// Largest returns the biggest region, skipping unbounded ones when
// excludeUnbounded is set. ok is false when no region qualifies.
// Ties on area are broken by the smaller site (by Y, then X) so the result
// is deterministic.
func (rs *Regions) Largest(excludeUnbounded bool) (best Region, ok bool) {
	for _, r := range rs.BySite {
		if excludeUnbounded && r.Unbounded {
			continue
		}
		if !ok || r.Area > best.Area || (r.Area == best.Area && less(r.Site, best.Site)) {
			best, ok = *r, true
		}
	}
	return best, ok
}

func less(a, b geom.Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// LargestFiniteRegion returns the number of cells in the largest region, or
// 0 when no cell has a unique owner (or every region is excluded).
// Returns geom.ErrNoPoints if points is empty.
// Complexity: O(W×H×n).
func LargestFiniteRegion(points []geom.Point, opts Options) (int, error) {
	rs, err := Partition(points)
	if err != nil {
		return 0, err
	}
	best, _ := rs.Largest(opts.ExcludeUnbounded)

	return best.Area, nil
}

// CountCellsUnderThreshold counts the cells of the points' bounding box whose
// summed Manhattan distance to every point is strictly below threshold.
// The count never decreases as threshold grows.
// Returns geom.ErrNoPoints if points is empty.
// Complexity: O(W×H×n).
func CountCellsUnderThreshold(points []geom.Point, threshold int) (int, error) {
	b, err := geom.BoundsOf(points)
	if err != nil {
		return 0, err
	}
	count := 0
	b.Cells(func(cell geom.Point) {
		sum := 0
		for _, p := range points {
			sum += p.Dist(cell)
			if sum >= threshold {
				return
			}
		}
		if sum < threshold {
			count++
		}
	})

	return count, nil
}
