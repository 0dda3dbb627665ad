package systems

import (
	"github.com/automoto/blockdude/components"
	cfg "github.com/automoto/blockdude/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the respawn flash. It has no effect on the
// simulation.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(1) / float32(max(cfg.C.TPS, 1))
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		components.Flash.Get(e).Advance(dt)
	})
}
