package tags

import "github.com/yohamta/donburi"

var (
	Block  = donburi.NewTag().SetName("Block")
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Bullet = donburi.NewTag().SetName("Bullet")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvBullet = "Bullet"
)
