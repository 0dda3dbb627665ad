package systems

import (
	cfg "github.com/automoto/blockdude/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on a fresh press of the pause action.
// Must run AFTER input is installed and BEFORE the gameplay systems.
func UpdatePause(ecs *ecs.ECS) {
	if !GetAction(getInput(ecs), cfg.ActionPause).JustPressed {
		return
	}
	state := getGameState(ecs)
	state.Paused = !state.Paused
	log.Debug("pause toggled", "paused", state.Paused, "frame", state.Frame)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if getGameState(e).Paused {
			return
		}
		system(e)
	}
}

// DrawPause dims the screen and shows the pause banner.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !getGameState(ecs).Paused {
		return
	}
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.UI.HUDBgColor, false)
	drawBanner(screen, "PAUSED")
}
