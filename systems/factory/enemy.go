package factory

import (
	"github.com/automoto/blockdude/archetypes"
	"github.com/automoto/blockdude/components"
	cfg "github.com/automoto/blockdude/config"
	"github.com/automoto/blockdude/levels"
	"github.com/automoto/blockdude/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns one enemy heading right. It is not added to the roster.
func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Enemy.Width, cfg.Enemy.Height))
	obj.Data = enemy.Entity()

	components.Body.SetValue(enemy, components.BodyData{
		Object:      obj,
		FacingRight: true,
		SpeedX:      cfg.Enemy.Speed,
	})
	components.Motion.SetValue(enemy, components.MotionData{
		StartX: x,
		StartY: y,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		BaseSpeed: cfg.Enemy.Speed,
		Direction: cfg.DirectionRight,
	})

	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	return enemy
}

// CreateEnemies spawns the batch in order and appends it to the roster.
func CreateEnemies(ecs *ecs.ECS, spawns []levels.SpawnPoint) {
	roster := components.Roster.Get(components.Roster.MustFirst(ecs.World))
	for _, sp := range spawns {
		roster.AddEnemy(CreateEnemy(ecs, sp.X, sp.Y).Entity())
	}
}
