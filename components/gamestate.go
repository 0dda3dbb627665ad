package components

import "github.com/yohamta/donburi"

type GameStateData struct {
	Frame    int
	Respawns int
	Kills    int
	Finished bool // every enemy is gone and the player left the screen to the right
	Quit     bool
	Paused   bool // gameplay systems skip their tick
	Debug    bool // collision overlay
}

var GameState = donburi.NewComponentType[GameStateData]()

// Running reports whether the main loop should keep stepping.
func (g *GameStateData) Running() bool {
	return !g.Finished && !g.Quit
}
