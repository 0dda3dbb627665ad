package factory

import (
	"math"

	"github.com/automoto/blockdude/archetypes"
	"github.com/automoto/blockdude/components"
	cfg "github.com/automoto/blockdude/config"
	"github.com/automoto/blockdude/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns a bullet at the owner's facing side, moving the way the
// owner faces. It is neither advanced nor registered.
func CreateBullet(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	if !owner.HasComponent(components.Body) {
		panic("factory: bullet owner has no body")
	}
	body := components.Body.Get(owner)

	speed := cfg.Bullet.Speed
	x := body.X + body.W/cfg.Bullet.RightOffsetDivisor
	if !body.FacingRight {
		speed = -speed
		x = body.X - cfg.Bullet.LeftOffset
	}
	y := body.Y + body.H/2 + cfg.Bullet.VerticalOffset

	// Whole pixels keep the bullet's edges comparable with tile edges.
	x, y = math.Trunc(x), math.Trunc(y)

	bullet := archetypes.Bullet.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Bullet.Width, cfg.Bullet.Height, tags.ResolvBullet)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Bullet.Width, cfg.Bullet.Height))
	obj.Data = bullet.Entity()

	components.Body.SetValue(bullet, components.BodyData{
		Object:      obj,
		FacingRight: body.FacingRight,
		SpeedX:      cfg.Bullet.Speed,
	})
	components.Bullet.SetValue(bullet, components.BulletData{
		SpeedX: speed,
		Owner:  owner.Entity(),
	})

	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	return bullet
}
