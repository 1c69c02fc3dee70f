package nearest

import (
	"strings"

	"github.com/katalvlaran/lvlgrid/geom"
	"github.com/katalvlaran/lvlgrid/grid"
)

// OwnerMap returns an arena over the points' bounding box where each cell
// holds 1 + the index of its owning point, or 0 for a tied cell.
// Returns geom.ErrNoPoints if points is empty.
// Complexity: O(W×H×n) time, O(W×H) memory.
func OwnerMap(points []geom.Point) (*grid.Arena[int], error) {
	b, err := geom.BoundsOf(points)
	if err != nil {
		return nil, err
	}
	index := make(map[geom.Point]int, len(points))
	for i, p := range points {
		if _, dup := index[p]; !dup {
			index[p] = i
		}
	}
	owners := grid.NewArena[int](b)
	b.Cells(func(cell geom.Point) {
		if site, ok := Owner(cell, points); ok {
			owners.Set(cell, index[site]+1)
		}
	})

	return owners, nil
}

// Render draws the partition one text row per grid row. Point i is drawn as
// the i-th capital letter on its own cell and in lower case on the rest of
// its region; tied cells are '.'. Points past the 26th are drawn as '*'.
func Render(points []geom.Point) (string, error) {
	owners, err := OwnerMap(points)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow((owners.Width + 1) * owners.Height)
	owners.Each(func(cell geom.Point, slot int) {
		switch {
		case slot == 0:
			sb.WriteByte('.')
		case slot > 26:
			sb.WriteByte('*')
		case points[slot-1] == cell:
			sb.WriteByte(byte('A' + slot - 1))
		default:
			sb.WriteByte(byte('a' + slot - 1))
		}
		if cell.X == owners.Bounds.Right {
			sb.WriteByte('\n')
		}
	})

	return sb.String(), nil
}
