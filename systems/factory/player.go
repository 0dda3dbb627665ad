package factory

import (
	"github.com/automoto/blockdude/archetypes"
	"github.com/automoto/blockdude/components"
	cfg "github.com/automoto/blockdude/config"
	"github.com/automoto/blockdude/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.Data = player.Entity()

	components.Body.SetValue(player, components.BodyData{
		Object:      obj,
		FacingRight: true,
		SpeedX:      cfg.Player.Speed,
	})
	components.Motion.SetValue(player, components.MotionData{
		StartX: x,
		StartY: y,
	})
	components.Player.SetValue(player, components.PlayerData{
		JumpDuration: cfg.Player.JumpDuration,
	})
	components.Flash.SetValue(player, components.FlashData{Alpha: 1})

	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	return player
}
