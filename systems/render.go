package systems

import (
	"github.com/automoto/blockdude/assets"
	"github.com/automoto/blockdude/components"
	cfg "github.com/automoto/blockdude/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawLevel renders the background and every block.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	bg := assets.GetSprite(cfg.UI.Background, cfg.C.Width, cfg.C.Height, cfg.UI.BackgroundColor)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	screen.DrawImage(bg.Image, drawOp)

	geo := getGeometry(ecs)
	size := int(geo.CellSize())
	block := assets.GetSprite("block.png", size, size, cfg.UI.BlockColor)
	for _, tile := range geo.Tiles() {
		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(tile.X, tile.Y)
		screen.DrawImage(block.Image, drawOp)
	}
}

// DrawActors renders enemies, the player and live bullets, each with the image
// matching its facing.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	roster := getRoster(ecs)

	enemySprite := assets.GetSprite(cfg.Enemy.Sprite, int(cfg.Enemy.Width), int(cfg.Enemy.Height), cfg.UI.EnemyColor)
	for _, e := range roster.Enemies {
		if entry := entryOf(ecs, e); entry != nil {
			drawBody(screen, entry, enemySprite, 1)
		}
	}

	if playerEntry, ok := components.Player.First(ecs.World); ok {
		alpha := float32(1)
		if playerEntry.HasComponent(components.Flash) {
			alpha = components.Flash.Get(playerEntry).Alpha
		}
		playerSprite := assets.GetSprite(cfg.Player.Sprite, int(cfg.Player.Width), int(cfg.Player.Height), cfg.UI.PlayerColor)
		drawBody(screen, playerEntry, playerSprite, alpha)
	}

	bulletSprite := assets.GetSprite(cfg.Bullet.Sprite, int(cfg.Bullet.Width), int(cfg.Bullet.Height), cfg.UI.BulletColor)
	for _, e := range roster.Bullets {
		if entry := entryOf(ecs, e); entry != nil {
			drawBody(screen, entry, bulletSprite, 1)
		}
	}
}

func drawBody(screen *ebiten.Image, e *donburi.Entry, sprite *assets.Sprite, alpha float32) {
	body := components.Body.Get(e)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(body.X, body.Y)
	drawOp.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(sprite.Facing(body.FacingRight), drawOp)
}
