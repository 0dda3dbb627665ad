package systems

import (
	"github.com/automoto/blockdude/components"
	"github.com/automoto/blockdude/geometry"
	"github.com/automoto/blockdude/systems/factory"
	"github.com/automoto/blockdude/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat runs the enemy death check. Each live enemy, in roster order, is
// killed by the first of the player's bullets that overlaps it. A bullet kills
// at most one enemy. Kills are applied after the pass.
func UpdateCombat(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if len(player.Bullets) == 0 {
		return
	}
	roster := getRoster(ecs)

	consumed := map[donburi.Entity]bool{}
	var killed []donburi.Entity
	for _, enemy := range roster.Enemies {
		enemyEntry := entryOf(ecs, enemy)
		if enemyEntry == nil {
			continue
		}
		enemyBody := components.Body.Get(enemyEntry)
		near := candidates(enemyBody.Object, tags.ResolvBullet)

		for _, b := range player.Bullets {
			if consumed[b] || !near[b] {
				continue
			}
			bulletEntry := entryOf(ecs, b)
			if bulletEntry == nil {
				continue
			}
			if geometry.Overlaps(enemyBody.Object, components.Body.Get(bulletEntry).Object) {
				consumed[b] = true
				killed = append(killed, enemy)
				break
			}
		}
	}

	for _, enemy := range killed {
		roster.RemoveEnemy(enemy)
		factory.Destroy(ecs, enemy)
	}
	for b := range consumed {
		removeBullet(ecs, b)
	}

	if len(killed) > 0 {
		state := getGameState(ecs)
		state.Kills += len(killed)
		log.Debug("enemies killed", "count", len(killed), "remaining", len(roster.Enemies))
	}
}
