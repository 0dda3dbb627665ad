package components

import "github.com/yohamta/donburi"

// BulletData describes a projectile. A spent bullet has hit an enemy: it is no
// longer live, but it stays on its owner's list until the enemy death check
// claims it.
type BulletData struct {
	SpeedX float64 // signed px/frame
	Owner  donburi.Entity
	Spent  bool
}

var Bullet = donburi.NewComponentType[BulletData]()
