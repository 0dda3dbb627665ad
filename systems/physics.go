package systems

import (
	"github.com/automoto/blockdude/components"
	cfg "github.com/automoto/blockdude/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies the fall reset, gravity and the jump state machine to
// every entity with Motion: the player first, then enemies in roster order.
func UpdatePhysics(ecs *ecs.ECS) {
	geo := getGeometry(ecs)

	for _, e := range motionEntries(ecs) {
		body := components.Body.Get(e)
		motion := components.Motion.Get(e)

		if body.Top() > float64(cfg.C.Height) {
			body.MoveTo(motion.StartX, motion.StartY)
		}

		if !geo.RestsOnFloor(body.Object) && motion.JumpCounter == 0 {
			moveY(geo, body, cfg.Physics.GravityStep)
		}

		if geo.TouchesCeiling(body.Object) {
			motion.JumpCounter = 0
		}
		if motion.JumpCounter > 0 {
			moveY(geo, body, -cfg.Physics.GravityStep)
			motion.JumpCounter--
		}
	}
}

func motionEntries(ecs *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	if player, ok := components.Player.First(ecs.World); ok {
		entries = append(entries, player)
	}
	for _, e := range getRoster(ecs).Enemies {
		if entry := entryOf(ecs, e); entry != nil {
			entries = append(entries, entry)
		}
	}
	return entries
}
