package systems

import (
	"github.com/automoto/blockdude/components"
	cfg "github.com/automoto/blockdude/config"
	"github.com/automoto/blockdude/geometry"
	"github.com/automoto/blockdude/systems/factory"
	"github.com/automoto/blockdude/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer handles the shot cooldown, shooting and the respawn triggers.
// Must run before UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	input := getInput(ecs)

	if player.ShootCooldown > 0 {
		player.ShootCooldown--
	}
	if input.Pressed(cfg.ActionShoot) && player.ShootCooldown == 0 {
		FireBullet(ecs, playerEntry)
		player.ShootCooldown = cfg.Player.ShootCooldown
	}

	if touchesLiveEnemy(ecs, body) || body.Top() > float64(cfg.C.Height) {
		Respawn(ecs, playerEntry)
	}
}

// UpdatePlayerMovement applies walking and the jump trigger. Must run after
// UpdatePhysics.
func UpdatePlayerMovement(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	geo := getGeometry(ecs)
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	motion := components.Motion.Get(playerEntry)
	input := getInput(ecs)

	if input.Pressed(cfg.ActionMoveLeft) && !geo.TouchesWallLeft(body.Object) {
		body.FacingRight = false
		moveX(geo, body, -body.SpeedX)
	}
	if input.Pressed(cfg.ActionMoveRight) && !geo.TouchesWallRight(body.Object) {
		body.FacingRight = true
		moveX(geo, body, body.SpeedX)
	}
	if input.Pressed(cfg.ActionJump) && geo.RestsOnFloor(body.Object) {
		motion.JumpCounter = player.JumpDuration
	}
}

// Respawn puts the player back at its start position and rebuilds the enemy
// batch from the level. Bullets, the jump counter and the cooldown are left as
// they are.
func Respawn(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	body := components.Body.Get(playerEntry)
	motion := components.Motion.Get(playerEntry)
	body.MoveTo(motion.StartX, motion.StartY)

	ResetEnemies(ecs)

	if playerEntry.HasComponent(components.Flash) {
		components.Flash.Get(playerEntry).Start(cfg.Effects.RespawnFlashMinAlpha, cfg.Effects.RespawnFlashSeconds)
	}

	state := getGameState(ecs)
	state.Respawns++
	log.Debug("player respawned", "frame", state.Frame, "respawns", state.Respawns)
}

// ResetEnemies destroys every live enemy and spawns the level's batch again.
func ResetEnemies(ecs *ecs.ECS) {
	roster := getRoster(ecs)
	for _, e := range roster.ClearEnemies() {
		factory.Destroy(ecs, e)
	}
	level := components.Level.Get(components.Level.MustFirst(ecs.World)).Level
	factory.CreateEnemies(ecs, level.Enemies)
}

func touchesLiveEnemy(ecs *ecs.ECS, body *components.BodyData) bool {
	near := candidates(body.Object, tags.ResolvEnemy)
	if len(near) == 0 {
		return false
	}
	for _, e := range getRoster(ecs).Enemies {
		if !near[e] {
			continue
		}
		if entry := entryOf(ecs, e); entry != nil && geometry.Overlaps(body.Object, components.Body.Get(entry).Object) {
			return true
		}
	}
	return false
}
