package factory

import (
	"github.com/automoto/blockdude/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Destroy removes an entity's body from the space and the entity from the
// world. Invalid entities are ignored.
func Destroy(ecs *ecs.ECS, e donburi.Entity) {
	if !ecs.World.Valid(e) {
		return
	}
	entry := ecs.World.Entry(e)
	if entry.HasComponent(components.Body) {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			if obj := components.Body.Get(entry).Object; obj != nil {
				components.Space.Get(spaceEntry).Remove(obj)
			}
		}
	}
	ecs.World.Remove(e)
}
