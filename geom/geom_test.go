package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/geom"
)

var samplePoints = []geom.Point{
	{X: 1, Y: 1}, {X: 1, Y: 6}, {X: 8, Y: 3},
	{X: 3, Y: 4}, {X: 5, Y: 5}, {X: 8, Y: 9},
}

// TestDist checks Manhattan distance in all four quadrants.
func TestDist(t *testing.T) {
	assert.Equal(t, 4, geom.Point{X: 1, Y: 1}.Dist(geom.Point{X: 3, Y: 3}))
	assert.Equal(t, 4, geom.Point{X: 3, Y: 3}.Dist(geom.Point{X: 1, Y: 1}))
	assert.Equal(t, 7, geom.Point{X: -2, Y: 3}.Dist(geom.Point{X: 1, Y: -1}))
	assert.Equal(t, 0, geom.Point{X: 5, Y: 5}.Dist(geom.Point{X: 5, Y: 5}))
	assert.Equal(t, int8(9), geom.AbsDiff[int8](-4, 5))
}

// TestBoundsOf verifies the minimal box over the sample point set.
func TestBoundsOf(t *testing.T) {
	b, err := geom.BoundsOf(samplePoints)
	require.NoError(t, err)
	assert.Equal(t, geom.Bounds{Top: 1, Bottom: 9, Left: 1, Right: 8}, b)
	assert.Equal(t, 8, b.Width())
	assert.Equal(t, 9, b.Height())
	assert.Equal(t, 72, b.Area())

	_, err = geom.BoundsOf(nil)
	assert.ErrorIs(t, err, geom.ErrNoPoints)
}

// TestBounds_Predicates covers Contains, OnEdge, Empty and Union.
func TestBounds_Predicates(t *testing.T) {
	b := geom.Bounds{Top: -1, Bottom: 2, Left: 0, Right: 3}
	assert.True(t, b.Contains(geom.Point{X: 0, Y: -1}))
	assert.False(t, b.Contains(geom.Point{X: 4, Y: 0}))
	assert.True(t, b.OnEdge(geom.Point{X: 3, Y: 1}))
	assert.False(t, b.OnEdge(geom.Point{X: 1, Y: 0}))
	assert.False(t, b.OnEdge(geom.Point{X: 9, Y: 9}))

	e := geom.EmptyBounds()
	assert.True(t, e.Empty())
	assert.Equal(t, 0, e.Area())
	assert.Equal(t, b, e.Union(b))
	assert.Equal(t, b, b.Union(e))
	assert.Equal(t,
		geom.Bounds{Top: -1, Bottom: 5, Left: -3, Right: 3},
		b.Union(geom.Bounds{Top: 4, Bottom: 5, Left: -3, Right: -3}))
}

// TestBounds_CellsOrder ensures row-major iteration over every cell.
func TestBounds_CellsOrder(t *testing.T) {
	var got []geom.Point
	geom.Bounds{Top: 0, Bottom: 1, Left: 2, Right: 3}.Cells(func(p geom.Point) {
		got = append(got, p)
	})
	assert.Equal(t, []geom.Point{{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}}, got)

	calls := 0
	geom.EmptyBounds().Cells(func(geom.Point) { calls++ })
	assert.Zero(t, calls)
}

// TestParsePoint covers well-formed and malformed records.
func TestParsePoint(t *testing.T) {
	p, err := geom.ParsePoint("8, 3")
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 8, Y: 3}, p)

	p, err = geom.ParsePoint(" -4,12 ")
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: -4, Y: 12}, p)

	for _, bad := range []string{"", "8 3", "a,3", "8,", "8,3,1"} {
		_, err := geom.ParsePoint(bad)
		assert.ErrorIs(t, err, geom.ErrMalformedPoint, "input %q", bad)
	}
}
