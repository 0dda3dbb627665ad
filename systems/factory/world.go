package factory

import (
	"github.com/automoto/blockdude/archetypes"
	"github.com/automoto/blockdude/components"
	"github.com/automoto/blockdude/levels"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorldState spawns the singleton holding the registries, the level, the
// game state and the input snapshot.
func CreateWorldState(ecs *ecs.ECS, level *levels.Level) *donburi.Entry {
	state := archetypes.World.Spawn(ecs)

	components.Level.SetValue(state, components.LevelData{Level: level})
	components.Roster.SetValue(state, components.RosterData{})
	components.GameState.SetValue(state, components.GameStateData{})
	components.Input.SetValue(state, components.InputData{})

	return state
}
