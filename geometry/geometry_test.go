package geometry

import (
	"math/rand"
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func body(x, y, w, h float64) *resolv.Object {
	return resolv.NewObject(x, y, w, h)
}

// Three tiles: a floor pair and one block sitting on top of the right end.
var smallGrid = [][]int{
	{0, 0, 0, 0},
	{0, 0, 0, 1},
	{0, 1, 1, 1},
}

func TestBuild(t *testing.T) {
	g := Build(smallGrid, 50)

	require.Equal(t, 4, g.Len())
	assert.Equal(t, 50.0, g.CellSize())

	first := g.Tiles()[0]
	assert.Equal(t, 150.0, first.X, "tiles are kept in row-major order")
	assert.Equal(t, 50.0, first.Y)
	assert.True(t, first.HasTags("solid"))

	w, h := g.Bounds()
	assert.Equal(t, 200.0, w)
	assert.Equal(t, 150.0, h)
}

func TestBuildRaggedRows(t *testing.T) {
	g := Build([][]int{{1}, {1, 0, 0, 1, 1}}, 10)
	assert.Equal(t, 4, g.Len())
	w, _ := g.Bounds()
	assert.Equal(t, 50.0, w)
}

func TestRestsOnFloor(t *testing.T) {
	g := Build(smallGrid, 50)

	assert.True(t, g.RestsOnFloor(body(50, 30, 50, 70)))
	assert.False(t, g.RestsOnFloor(body(50, 31, 50, 70)), "one pixel inside the tile is not resting")
	assert.False(t, g.RestsOnFloor(body(50, 29, 50, 70)), "one pixel above is falling")
	assert.False(t, g.RestsOnFloor(body(0, 30, 50, 70)), "touching only at the corner is not support")
	assert.True(t, g.RestsOnFloor(body(1, 30, 50, 70)))
}

func TestWallsAndCeiling(t *testing.T) {
	g := Build(smallGrid, 50)

	// Standing on the floor, right edge flush with the block at column 3.
	b := body(100, 30, 50, 70)
	assert.True(t, g.TouchesWallRight(b))
	assert.False(t, g.TouchesWallLeft(b))

	// Left edge flush with the block's right side.
	assert.True(t, g.TouchesWallLeft(body(200, 60, 20, 20)))
	// Vertically past the block: no contact.
	assert.False(t, g.TouchesWallLeft(body(200, 150, 20, 20)))

	// Directly under the block, top edge flush with its bottom.
	assert.True(t, g.TouchesCeiling(body(160, 100, 20, 10)))
	assert.False(t, g.TouchesCeiling(body(160, 101, 20, 10)))
}

func TestPointIsFloor(t *testing.T) {
	g := Build(smallGrid, 50)

	assert.True(t, g.PointIsFloor(50, 100), "top-left corner is inclusive")
	assert.True(t, g.PointIsFloor(199.5, 149.5))
	assert.False(t, g.PointIsFloor(200, 120), "right edge is exclusive")
	assert.False(t, g.PointIsFloor(60, 150), "bottom edge is exclusive")
	assert.False(t, g.PointIsFloor(10, 110))
	assert.False(t, g.PointIsFloor(-5, -5))
}

func TestOverlaps(t *testing.T) {
	a := body(0, 0, 10, 10)
	assert.True(t, Overlaps(a, body(9, 9, 10, 10)))
	assert.False(t, Overlaps(a, body(10, 0, 10, 10)), "shared edge is not an overlap")
	assert.False(t, Overlaps(a, body(0, 10, 10, 10)))
	assert.True(t, Overlaps(a, body(2, 2, 2, 2)))
}

func bruteFloor(g *StaticGeometry, b *resolv.Object) bool {
	for _, t := range g.Tiles() {
		if t.Y == b.Y+b.H && t.X < b.X+b.W && b.X < t.X+t.W {
			return true
		}
	}
	return false
}

func bruteCeiling(g *StaticGeometry, b *resolv.Object) bool {
	for _, t := range g.Tiles() {
		if t.Y+t.H == b.Y && t.X < b.X+b.W && b.X < t.X+t.W {
			return true
		}
	}
	return false
}

func bruteLeft(g *StaticGeometry, b *resolv.Object) bool {
	for _, t := range g.Tiles() {
		if t.X+t.W == b.X && t.Y < b.Y+b.H && b.Y < t.Y+t.H {
			return true
		}
	}
	return false
}

func bruteRight(g *StaticGeometry, b *resolv.Object) bool {
	for _, t := range g.Tiles() {
		if t.X == b.X+b.W && t.Y < b.Y+b.H && b.Y < t.Y+t.H {
			return true
		}
	}
	return false
}

func brutePoint(g *StaticGeometry, x, y float64) bool {
	for _, t := range g.Tiles() {
		if t.X <= x && x < t.X+t.W && t.Y <= y && y < t.Y+t.H {
			return true
		}
	}
	return false
}

func TestQueriesMatchFullScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		rows, cols := 4+rng.Intn(8), 4+rng.Intn(8)
		grid := make([][]int, rows)
		for r := range grid {
			grid[r] = make([]int, cols-rng.Intn(3))
			for c := range grid[r] {
				if rng.Intn(3) == 0 {
					grid[r][c] = 1
				}
			}
		}
		g := Build(grid, 10)

		for i := 0; i < 200; i++ {
			// Coarse coordinates so that exact touches happen often.
			x := float64(rng.Intn(cols*4)-4) * 5
			y := float64(rng.Intn(rows*4)-4) * 5
			w := float64(1+rng.Intn(6)) * 5
			h := float64(1+rng.Intn(6)) * 5
			b := body(x, y, w, h)

			require.Equal(t, bruteFloor(g, b), g.RestsOnFloor(b), "floor %v", b)
			require.Equal(t, bruteCeiling(g, b), g.TouchesCeiling(b), "ceiling %v", b)
			require.Equal(t, bruteLeft(g, b), g.TouchesWallLeft(b), "left %v", b)
			require.Equal(t, bruteRight(g, b), g.TouchesWallRight(b), "right %v", b)

			px := float64(rng.Intn(cols*20)-10) / 2
			py := float64(rng.Intn(rows*20)-10) / 2
			require.Equal(t, brutePoint(g, px, py), g.PointIsFloor(px, py), "point %v,%v", px, py)
		}
	}
}
