package nearest

import "github.com/katalvlaran/lvlgrid/geom"

// Options configures LargestFiniteRegion.
type Options struct {
	// ExcludeUnbounded skips regions that touch the bounding-box edge.
	// Off by default, which keeps edge regions eligible.
	ExcludeUnbounded bool
}

// DefaultOptions returns Options with ExcludeUnbounded=false.
func DefaultOptions() Options {
	return Options{ExcludeUnbounded: false}
}

// Region is the set of cells owned by one input point, summarised.
type Region struct {
	Site geom.Point
	Area int
	// Unbounded is true when at least one owned cell lies on the box edge.
	Unbounded bool
}

// Regions is the result of Partition. Sites with no owned cell are absent.
type Regions struct {
	Bounds geom.Bounds
	BySite map[geom.Point]*Region
	// Tied counts cells whose minimum distance is shared by several points.
	Tied int
}
