package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/blockdude/components"
	cfg "github.com/automoto/blockdude/config"
	"github.com/automoto/blockdude/fonts"
	"github.com/automoto/blockdude/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the space when the debug overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getGameState(ecs)
	if !state.Debug && !cfg.Debug.DrawColliders {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255}
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	roster := getRoster(ecs)
	info := fmt.Sprintf("frame %d  bullets %d  objects %d", state.Frame, len(roster.Bullets), len(space.Objects()))
	text.Draw(screen, info, fonts.Regular.Get(), int(cfg.UI.HUDMargin), cfg.C.Height-int(cfg.UI.HUDMargin), cfg.UI.HUDTextColor)
}
