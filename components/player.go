package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	JumpDuration  int
	ShootCooldown int              // frames until the next shot is allowed
	Bullets       []donburi.Entity // bullets this player fired, oldest first
}

var Player = donburi.NewComponentType[PlayerData]()

func (p *PlayerData) AddBullet(e donburi.Entity) {
	p.Bullets = append(p.Bullets, e)
}

// RemoveBullet drops e from the owned list. It reports false if e was not
// owned.
func (p *PlayerData) RemoveBullet(e donburi.Entity) bool {
	var ok bool
	p.Bullets, ok = removeEntity(p.Bullets, e)
	return ok
}
