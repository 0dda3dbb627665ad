package systems

import (
	"math"
	"slices"

	"github.com/automoto/blockdude/components"
	cfg "github.com/automoto/blockdude/config"
	"github.com/automoto/blockdude/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type bulletOutcome int

const (
	bulletFlying bulletOutcome = iota
	bulletStopped              // hit a wall or left the playfield
	bulletHitEnemy
)

// FireBullet creates a bullet for owner, gives it one advance and registers
// it. A bullet stopped by that first advance is destroyed right away; one that
// already hit an enemy goes straight onto the owner's list as spent.
func FireBullet(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	bullet := factory.CreateBullet(ecs, owner)
	player := components.Player.Get(owner)

	switch advance(ecs, bullet) {
	case bulletStopped:
		factory.Destroy(ecs, bullet.Entity())
		return nil
	case bulletHitEnemy:
		components.Bullet.Get(bullet).Spent = true
		player.AddBullet(bullet.Entity())
	default:
		getRoster(ecs).AddBullet(bullet.Entity())
		player.AddBullet(bullet.Entity())
	}
	return bullet
}

// AdvanceBullet moves a registered live bullet one frame and applies the
// result. It reports whether the bullet is still live.
func AdvanceBullet(ecs *ecs.ECS, bullet *donburi.Entry) bool {
	switch advance(ecs, bullet) {
	case bulletStopped:
		removeBullet(ecs, bullet.Entity())
		return false
	case bulletHitEnemy:
		components.Bullet.Get(bullet).Spent = true
		getRoster(ecs).RemoveBullet(bullet.Entity())
		return false
	}
	return true
}

// advance moves the bullet one unit at a time, checking walls, live enemies and
// the right screen edge after every unit.
func advance(ecs *ecs.ECS, bullet *donburi.Entry) bulletOutcome {
	geo := getGeometry(ecs)
	body := components.Body.Get(bullet)
	data := components.Bullet.Get(bullet)

	steps := int(math.Abs(data.SpeedX))
	dir := 1.0
	if data.SpeedX < 0 {
		dir = -1
	}

	for range steps {
		body.X += dir
		body.Update()

		if geo.TouchesWallLeft(body.Object) || geo.TouchesWallRight(body.Object) {
			return bulletStopped
		}
		if touchesLiveEnemy(ecs, body) {
			return bulletHitEnemy
		}
		if body.X > float64(cfg.C.Width) {
			return bulletStopped
		}
	}
	return bulletFlying
}

// removeBullet drops a bullet from the live registry and its owner's list and
// destroys it.
func removeBullet(ecs *ecs.ECS, e donburi.Entity) {
	getRoster(ecs).RemoveBullet(e)
	if entry := entryOf(ecs, e); entry != nil {
		owner := components.Bullet.Get(entry).Owner
		if ownerEntry := entryOf(ecs, owner); ownerEntry != nil && ownerEntry.HasComponent(components.Player) {
			components.Player.Get(ownerEntry).RemoveBullet(e)
		}
	}
	factory.Destroy(ecs, e)
}

// UpdateBullets advances every live bullet in registry order. A bullet that
// stops or hits an enemy leaves the registry as soon as its advance ends.
func UpdateBullets(ecs *ecs.ECS) {
	roster := getRoster(ecs)

	retired := 0
	for _, e := range slices.Clone(roster.Bullets) {
		entry := entryOf(ecs, e)
		if entry == nil {
			continue
		}
		if !AdvanceBullet(ecs, entry) {
			retired++
		}
	}
	if retired > 0 {
		log.Debug("bullets retired", "count", retired, "live", len(roster.Bullets))
	}
}
