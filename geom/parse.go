package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePoint parses a "<x>,<y>" record such as "8, 3".
// Whitespace around either coordinate is ignored.
// Errors wrap ErrMalformedPoint.
func ParsePoint(line string) (Point, error) {
	xs, ys, ok := strings.Cut(line, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q: missing ','", ErrMalformedPoint, line)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: x: %v", ErrMalformedPoint, line, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: y: %v", ErrMalformedPoint, line, err)
	}

	return Point{X: x, Y: y}, nil
}
