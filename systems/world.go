package systems

import (
	"github.com/automoto/blockdude/components"
	"github.com/automoto/blockdude/geometry"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getRoster(ecs *ecs.ECS) *components.RosterData {
	return components.Roster.Get(components.Roster.MustFirst(ecs.World))
}

func getGameState(ecs *ecs.ECS) *components.GameStateData {
	return components.GameState.Get(components.GameState.MustFirst(ecs.World))
}

func getGeometry(ecs *ecs.ECS) *geometry.StaticGeometry {
	return components.Geometry.Get(components.Geometry.MustFirst(ecs.World)).StaticGeometry
}

// entryOf returns the entry for a registry handle, or nil if it was removed.
func entryOf(ecs *ecs.ECS, e donburi.Entity) *donburi.Entry {
	if !ecs.World.Valid(e) {
		return nil
	}
	return ecs.World.Entry(e)
}

// candidates returns the entities whose bodies share a space cell with obj and
// carry tag. It is a broadphase: callers still test for real overlap.
func candidates(obj *resolv.Object, tag string) map[donburi.Entity]bool {
	found := map[donburi.Entity]bool{}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return found
	}
	for _, o := range check.ObjectsByTags(tag) {
		if e, ok := o.Data.(donburi.Entity); ok {
			found[e] = true
		}
	}
	return found
}
