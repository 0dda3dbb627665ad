package systems

import (
	"github.com/automoto/blockdude/components"
	cfg "github.com/automoto/blockdude/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameState runs last each tick. It handles quit and the debug toggle,
// detects the end of the level and counts frames. Paused ticks are not counted.
func UpdateGameState(ecs *ecs.ECS) {
	state := getGameState(ecs)
	input := getInput(ecs)

	if input.Pressed(cfg.ActionQuit) {
		state.Quit = true
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		state.Debug = !state.Debug
	}
	if state.Paused {
		return
	}

	if !state.Finished && len(getRoster(ecs).Enemies) == 0 {
		if playerEntry, ok := components.Player.First(ecs.World); ok {
			if components.Body.Get(playerEntry).X > float64(cfg.C.Width) {
				state.Finished = true
				log.Info("level finished", "frame", state.Frame, "respawns", state.Respawns, "kills", state.Kills)
			}
		}
	}

	state.Frame++
}
