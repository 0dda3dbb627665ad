package systems

import (
	"fmt"

	cfg "github.com/automoto/blockdude/config"
	"github.com/automoto/blockdude/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudWidth  = 260
	hudHeight = 56
)

// DrawHUD renders the enemy and respawn counters in the top-left corner and a
// banner once the level is finished.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getGameState(ecs)
	face := fonts.Regular.Get()
	m := float32(cfg.UI.HUDMargin)

	vector.FillRect(screen, m, m, hudWidth, hudHeight, cfg.UI.HUDBgColor, false)

	x := int(cfg.UI.HUDMargin) + 8
	y := int(cfg.UI.HUDMargin) + 22
	text.Draw(screen, fmt.Sprintf("Enemies: %d", len(getRoster(ecs).Enemies)), face, x, y, cfg.UI.HUDTextColor)
	text.Draw(screen, fmt.Sprintf("Respawns: %d", state.Respawns), face, x, y+24, cfg.UI.HUDTextColor)

	if state.Finished {
		drawBanner(screen, "LEVEL CLEAR")
	}
}

func drawBanner(screen *ebiten.Image, msg string) {
	face := fonts.Title.Get()
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, float32(height)/2-50, float32(width), 100, cfg.UI.HUDBgColor, false)

	bounds := text.BoundString(face, msg)
	x := (width - bounds.Dx()) / 2
	text.Draw(screen, msg, face, x, height/2+bounds.Dy()/2, cfg.UI.BannerColor)
}
