package factory

import (
	"github.com/automoto/blockdude/archetypes"
	"github.com/automoto/blockdude/components"
	"github.com/yohamta/donburi/ecs"
)

// CreateBlocks wraps every tile of the static geometry in a block entity and
// records the blocks in the roster. The tiles are already in the space.
func CreateBlocks(ecs *ecs.ECS) {
	geo := components.Geometry.Get(components.Geometry.MustFirst(ecs.World))
	roster := components.Roster.Get(components.Roster.MustFirst(ecs.World))

	for _, tile := range geo.Tiles() {
		block := archetypes.Block.Spawn(ecs)
		tile.Data = block.Entity()
		components.Body.SetValue(block, components.BodyData{Object: tile})
		roster.Blocks = append(roster.Blocks, block.Entity())
	}
}
