package geom

// Bounds is an inclusive axis-aligned box: every cell (x,y) with
// Left ≤ x ≤ Right and Top ≤ y ≤ Bottom. Top is the smallest y.
// A box with Right < Left or Bottom < Top is empty.
type Bounds struct {
	Top, Bottom, Left, Right int
}

// EmptyBounds returns a box containing no cells. It is the identity for Union.
func EmptyBounds() Bounds {
	return Bounds{Top: 0, Bottom: -1, Left: 0, Right: -1}
}

// BoundsOf returns the minimal box containing every point.
// Returns ErrNoPoints if points is empty.
// Complexity: O(n).
func BoundsOf(points []Point) (Bounds, error) {
	if len(points) == 0 {
		return Bounds{}, ErrNoPoints
	}
	b := Bounds{Top: points[0].Y, Bottom: points[0].Y, Left: points[0].X, Right: points[0].X}
	for _, p := range points[1:] {
		b.Top = min(b.Top, p.Y)
		b.Bottom = max(b.Bottom, p.Y)
		b.Left = min(b.Left, p.X)
		b.Right = max(b.Right, p.X)
	}

	return b, nil
}

// Empty reports whether b contains no cells.
func (b Bounds) Empty() bool {
	return b.Right < b.Left || b.Bottom < b.Top
}

// Width is the number of columns in b (0 when empty).
func (b Bounds) Width() int {
	if b.Empty() {
		return 0
	}
	return b.Right - b.Left + 1
}

// Height is the number of rows in b (0 when empty).
func (b Bounds) Height() int {
	if b.Empty() {
		return 0
	}
	return b.Bottom - b.Top + 1
}

// Area is Width×Height.
func (b Bounds) Area() int {
	return b.Width() * b.Height()
}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// OnEdge reports whether p lies on the outermost ring of b.
func (b Bounds) OnEdge(p Point) bool {
	if !b.Contains(p) {
		return false
	}
	return p.X == b.Left || p.X == b.Right || p.Y == b.Top || p.Y == b.Bottom
}

// Union returns the smallest box containing both b and o.
// Empty operands are ignored.
func (b Bounds) Union(o Bounds) Bounds {
	switch {
	case b.Empty():
		return o
	case o.Empty():
		return b
	}
	return Bounds{
		Top:    min(b.Top, o.Top),
		Bottom: max(b.Bottom, o.Bottom),
		Left:   min(b.Left, o.Left),
		Right:  max(b.Right, o.Right),
	}
}

// Cells calls fn for every cell in b, row by row from Top to Bottom and
// left to right within a row.
// Complexity: O(W×H).
func (b Bounds) Cells(fn func(Point)) {
	for y := b.Top; y <= b.Bottom; y++ {
		for x := b.Left; x <= b.Right; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}
