package components

import (
	"slices"

	"github.com/yohamta/donburi"
)

// RosterData keeps the world registries in insertion order. donburi queries do
// not promise a stable order once entities are removed, and the simulation
// visits entities in the order they were created.
type RosterData struct {
	Blocks  []donburi.Entity
	Enemies []donburi.Entity
	Bullets []donburi.Entity // live bullets only
}

var Roster = donburi.NewComponentType[RosterData]()

func (r *RosterData) AddEnemy(e donburi.Entity)  { r.Enemies = append(r.Enemies, e) }
func (r *RosterData) AddBullet(e donburi.Entity) { r.Bullets = append(r.Bullets, e) }

func (r *RosterData) RemoveEnemy(e donburi.Entity) bool {
	var ok bool
	r.Enemies, ok = removeEntity(r.Enemies, e)
	return ok
}

func (r *RosterData) RemoveBullet(e donburi.Entity) bool {
	var ok bool
	r.Bullets, ok = removeEntity(r.Bullets, e)
	return ok
}

// ClearEnemies empties the enemy registry and returns what it held.
func (r *RosterData) ClearEnemies() []donburi.Entity {
	old := r.Enemies
	r.Enemies = nil
	return old
}

func removeEntity(list []donburi.Entity, e donburi.Entity) ([]donburi.Entity, bool) {
	i := slices.Index(list, e)
	if i < 0 {
		return list, false
	}
	return slices.Delete(list, i, i+1), true
}
