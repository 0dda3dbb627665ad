package factory

import (
	"github.com/automoto/blockdude/archetypes"
	"github.com/automoto/blockdude/components"
	cfg "github.com/automoto/blockdude/config"
	"github.com/automoto/blockdude/geometry"
	"github.com/automoto/blockdude/levels"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceMargin is extra room, in cells, below and right of the playfield so
// that bodies leaving the screen still get broadphase cells.
const spaceMargin = 4

// CreateSpace builds the static geometry for level and a resolv space with one
// cell per tile that already holds every tile.
func CreateSpace(ecs *ecs.ECS, level *levels.Level) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)

	geo := geometry.Build(level.Grid, level.TileSize)
	gw, gh := geo.Bounds()
	cell := int(level.TileSize)
	width := max(int(gw), cfg.C.Width) + spaceMargin*cell
	height := max(int(gh), cfg.C.Height) + spaceMargin*cell

	spaceData := resolv.NewSpace(width, height, cell, cell)
	geo.AddTo(spaceData)

	components.Space.Set(space, spaceData)
	components.Geometry.SetValue(space, components.GeometryData{StaticGeometry: geo})
	return space
}
