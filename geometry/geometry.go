// Package geometry holds the static block grid of a level and answers the
// exact-contact questions the simulation asks about actor rectangles.
//
// Contact is exact: a body rests on the floor only when its bottom edge equals
// a tile's top edge. Movement code keeps edges on whole units so that these
// comparisons stay meaningful.
package geometry

import (
	"math"

	"github.com/automoto/blockdude/levels"
	"github.com/automoto/blockdude/tags"
	"github.com/solarlune/resolv"
)

type cell struct {
	col, row int
}

// StaticGeometry is the immutable set of solid tiles of a level.
type StaticGeometry struct {
	cellSize float64
	tiles    map[cell]*resolv.Object
	order    []*resolv.Object
	cols     int
	rows     int
}

// Build creates one tile for every cell holding levels.Solid. Rows may have
// different lengths.
func Build(grid [][]int, cellSize float64) *StaticGeometry {
	g := &StaticGeometry{
		cellSize: cellSize,
		tiles:    make(map[cell]*resolv.Object),
		rows:     len(grid),
	}
	for row, line := range grid {
		g.cols = max(g.cols, len(line))
		for col, code := range line {
			if code != levels.Solid {
				continue
			}
			x, y := float64(col)*cellSize, float64(row)*cellSize
			obj := resolv.NewObject(x, y, cellSize, cellSize, tags.ResolvSolid)
			obj.SetShape(resolv.NewRectangle(0, 0, cellSize, cellSize))
			g.tiles[cell{col, row}] = obj
			g.order = append(g.order, obj)
		}
	}
	return g
}

// Tiles returns the tiles in row-major build order.
func (g *StaticGeometry) Tiles() []*resolv.Object { return g.order }

func (g *StaticGeometry) Len() int { return len(g.order) }

func (g *StaticGeometry) CellSize() float64 { return g.cellSize }

// Bounds is the pixel size of the grid, using the widest row.
func (g *StaticGeometry) Bounds() (w, h float64) {
	return float64(g.cols) * g.cellSize, float64(g.rows) * g.cellSize
}

// AddTo registers every tile with a resolv space.
func (g *StaticGeometry) AddTo(space *resolv.Space) {
	space.Add(g.order...)
}

// RestsOnFloor reports whether a tile's top edge equals the body's bottom edge
// while the two overlap horizontally.
func (g *StaticGeometry) RestsOnFloor(b *resolv.Object) bool {
	bottom := b.Y + b.H
	return g.anyInRows(bottom, b.X, b.X+b.W, func(t *resolv.Object) bool {
		return t.Y == bottom && t.X < b.X+b.W && b.X < t.X+t.W
	})
}

// TouchesCeiling reports whether a tile's bottom edge equals the body's top
// edge while the two overlap horizontally.
func (g *StaticGeometry) TouchesCeiling(b *resolv.Object) bool {
	top := b.Y
	return g.anyInRows(top-g.cellSize, b.X, b.X+b.W, func(t *resolv.Object) bool {
		return t.Y+t.H == top && t.X < b.X+b.W && b.X < t.X+t.W
	})
}

// TouchesWallLeft reports whether a tile's right edge equals the body's left
// edge while the two overlap vertically.
func (g *StaticGeometry) TouchesWallLeft(b *resolv.Object) bool {
	left := b.X
	return g.anyInCols(left-g.cellSize, b.Y, b.Y+b.H, func(t *resolv.Object) bool {
		return t.X+t.W == left && t.Y < b.Y+b.H && b.Y < t.Y+t.H
	})
}

// TouchesWallRight reports whether a tile's left edge equals the body's right
// edge while the two overlap vertically.
func (g *StaticGeometry) TouchesWallRight(b *resolv.Object) bool {
	right := b.X + b.W
	return g.anyInCols(right, b.Y, b.Y+b.H, func(t *resolv.Object) bool {
		return t.X == right && t.Y < b.Y+b.H && b.Y < t.Y+t.H
	})
}

// PointIsFloor reports whether the point lies inside a tile. Left and top
// edges are inclusive, right and bottom edges exclusive.
func (g *StaticGeometry) PointIsFloor(x, y float64) bool {
	col := int(math.Floor(x / g.cellSize))
	row := int(math.Floor(y / g.cellSize))
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			t, ok := g.tiles[cell{c, r}]
			if ok && t.X <= x && x < t.X+t.W && t.Y <= y && y < t.Y+t.H {
				return true
			}
		}
	}
	return false
}

// anyInRows visits the tiles whose top edge may equal edge and whose columns
// may overlap (from, to).
func (g *StaticGeometry) anyInRows(edge, from, to float64, match func(*resolv.Object) bool) bool {
	row := int(math.Floor(edge / g.cellSize))
	first := int(math.Floor(from/g.cellSize)) - 1
	last := int(math.Floor(to/g.cellSize)) + 1
	for r := row - 1; r <= row+1; r++ {
		for c := first; c <= last; c++ {
			if t, ok := g.tiles[cell{c, r}]; ok && match(t) {
				return true
			}
		}
	}
	return false
}

// anyInCols visits the tiles whose left edge may equal edge and whose rows may
// overlap (from, to).
func (g *StaticGeometry) anyInCols(edge, from, to float64, match func(*resolv.Object) bool) bool {
	col := int(math.Floor(edge / g.cellSize))
	first := int(math.Floor(from/g.cellSize)) - 1
	last := int(math.Floor(to/g.cellSize)) + 1
	for c := col - 1; c <= col+1; c++ {
		for r := first; r <= last; r++ {
			if t, ok := g.tiles[cell{c, r}]; ok && match(t) {
				return true
			}
		}
	}
	return false
}

// Overlaps reports whether two rectangles share interior area. Rectangles that
// only touch along an edge do not overlap.
func Overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
