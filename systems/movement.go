package systems

import (
	"math"

	"github.com/automoto/blockdude/components"
	"github.com/automoto/blockdude/geometry"
	"github.com/solarlune/resolv"
)

// Bodies move in steps of at most one unit and never step across a cell
// boundary, so a moving edge always lands exactly on any tile edge in its way.
// Movement stops as soon as the leading edge touches a tile.

// moveX moves the body horizontally by up to dx.
func moveX(geo *geometry.StaticGeometry, body *components.BodyData, dx float64) {
	blocked, lead, sign := geo.TouchesWallRight, body.Right, 1.0
	if dx < 0 {
		blocked, lead, sign = geo.TouchesWallLeft, body.Left, -1.0
	}
	sweep(geo.CellSize(), body.Object, &body.X, math.Abs(dx), sign, lead, blocked)
}

// moveY moves the body vertically by up to dy. Positive dy is down.
func moveY(geo *geometry.StaticGeometry, body *components.BodyData, dy float64) {
	blocked, lead, sign := geo.RestsOnFloor, body.Bottom, 1.0
	if dy < 0 {
		blocked, lead, sign = geo.TouchesCeiling, body.Top, -1.0
	}
	sweep(geo.CellSize(), body.Object, &body.Y, math.Abs(dy), sign, lead, blocked)
}

func sweep(cell float64, obj *resolv.Object, pos *float64, dist, sign float64, lead func() float64, blocked func(*resolv.Object) bool) {
	for dist > 0 && !blocked(obj) {
		step := min(1, dist, distanceToGridLine(lead(), sign, cell))
		if step <= 0 {
			break
		}
		*pos += sign * step
		dist -= step
	}
	obj.Update()
}

// distanceToGridLine is the distance from edge to the next cell boundary in
// direction sign, never zero.
func distanceToGridLine(edge, sign, cell float64) float64 {
	if sign > 0 {
		return math.Floor(edge/cell)*cell + cell - edge
	}
	return edge - (math.Ceil(edge/cell)*cell - cell)
}
