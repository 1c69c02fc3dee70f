package grid

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/geom"
)

// Arena stores one T per cell of Bounds. It is not safe for concurrent use.
type Arena[T any] struct {
	Bounds        geom.Bounds
	Width, Height int
	cells         []T
}

// NewArena allocates a zeroed arena covering b. An empty b yields an arena
// with no cells.
// Complexity: O(W×H) time and memory.
func NewArena[T any](b geom.Bounds) *Arena[T] {
	w, h := b.Width(), b.Height()
	return &Arena[T]{
		Bounds: b,
		Width:  w,
		Height: h,
		cells:  make([]T, w*h),
	}
}

// Len is the number of cells.
func (a *Arena[T]) Len() int {
	return len(a.cells)
}

// InBounds reports whether p lies within the arena.
// Complexity: O(1).
func (a *Arena[T]) InBounds(p geom.Point) bool {
	return a.Bounds.Contains(p)
}

// At returns the value stored at p.
func (a *Arena[T]) At(p geom.Point) T {
	return a.cells[a.index(p)]
}

// Set stores v at p.
func (a *Arena[T]) Set(p geom.Point, v T) {
	a.cells[a.index(p)] = v
}

// Ptr returns a pointer to the cell at p for in-place updates.
func (a *Arena[T]) Ptr(p geom.Point) *T {
	return &a.cells[a.index(p)]
}

// index maps p to a row-major offset: (y-Top)*Width + (x-Left).
// Complexity: O(1).
func (a *Arena[T]) index(p geom.Point) int {
	if !a.InBounds(p) {
		panic(fmt.Sprintf("grid: point %v outside arena %+v", p, a.Bounds))
	}
	return (p.Y-a.Bounds.Top)*a.Width + (p.X - a.Bounds.Left)
}

// Coordinate converts a row-major index back to its absolute point.
// Complexity: O(1).
func (a *Arena[T]) Coordinate(idx int) geom.Point {
	return geom.Point{X: a.Bounds.Left + idx%a.Width, Y: a.Bounds.Top + idx/a.Width}
}

// Each calls fn for every cell in row-major order with its point and value.
func (a *Arena[T]) Each(fn func(geom.Point, T)) {
	for i, v := range a.cells {
		fn(a.Coordinate(i), v)
	}
}
