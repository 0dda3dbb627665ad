package systems

import (
	"github.com/automoto/blockdude/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs the patrol rule for every live enemy in roster order.
func UpdateEnemies(ecs *ecs.ECS) {
	geo := getGeometry(ecs)

	for _, e := range getRoster(ecs).Enemies {
		entry := entryOf(ecs, e)
		if entry == nil {
			continue
		}
		body := components.Body.Get(entry)
		enemy := components.Enemy.Get(entry)

		dir := float64(enemy.Direction)
		leftBlocked := geo.TouchesWallLeft(body.Object)
		rightBlocked := geo.TouchesWallRight(body.Object)
		ahead := geo.PointIsFloor(body.CenterX()+dir*enemy.BaseSpeed, body.Bottom()+1)

		if !leftBlocked && !rightBlocked && ahead {
			moveX(geo, body, dir*enemy.BaseSpeed)
			continue
		}

		enemy.Reverse()
		body.FacingRight = !body.FacingRight
		if leftBlocked {
			moveX(geo, body, enemy.BaseSpeed)
		}
		if rightBlocked {
			moveX(geo, body, -enemy.BaseSpeed)
		}
	}
}
