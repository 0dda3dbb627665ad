// Package simulation assembles a playable world and steps it frame by frame,
// either under ebiten or headless.
package simulation

import (
	"fmt"

	"github.com/automoto/blockdude/components"
	cfg "github.com/automoto/blockdude/config"
	"github.com/automoto/blockdude/levels"
	"github.com/automoto/blockdude/systems"
	"github.com/automoto/blockdude/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type options struct {
	deviceInput bool
	renderers   bool
}

// Option customises NewWorld.
type Option func(*options)

// WithDeviceInput polls keyboard and gamepads at the start of every tick.
func WithDeviceInput() Option {
	return func(o *options) { o.deviceInput = true }
}

// WithRenderers registers the draw functions on the default layer.
func WithRenderers() Option {
	return func(o *options) { o.renderers = true }
}

// NewWorld builds the entities for level and registers the systems in their
// fixed order.
func NewWorld(level *levels.Level, opts ...Option) (*ecs.ECS, error) {
	if level == nil {
		return nil, fmt.Errorf("new world: nil level")
	}
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	if o.deviceInput {
		ecs.AddSystem(systems.UpdateInput)
	}
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCombat))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayerMovement))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBullets))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.UpdateGameState)

	if o.renderers {
		ecs.AddRenderer(cfg.Default, systems.DrawLevel)
		ecs.AddRenderer(cfg.Default, systems.DrawActors)
		ecs.AddRenderer(cfg.Default, systems.DrawHUD)
		ecs.AddRenderer(cfg.Default, systems.DrawDebug)
		ecs.AddRenderer(cfg.Default, systems.DrawPause)
	}

	factory.CreateWorldState(ecs, level)
	factory.CreateSpace(ecs, level)
	factory.CreateBlocks(ecs)
	factory.CreatePlayer(ecs, level.Player.X, level.Player.Y)
	factory.CreateEnemies(ecs, level.Enemies)

	log.Info("world built", "level", level.Name, "blocks", level.SolidCount(), "enemies", len(level.Enemies))
	return ecs, nil
}

// Step installs snapshot as this frame's input and runs one tick.
func Step(e *ecs.ECS, snapshot [cfg.ActionCount]bool) {
	systems.SetInput(e, snapshot)
	e.Update()
}

// Running reports whether the world should keep stepping: false once the level
// is finished or quit was requested.
func Running(e *ecs.ECS) bool {
	return State(e).Running()
}

// State returns the world's game state.
func State(e *ecs.ECS) *components.GameStateData {
	return components.GameState.Get(components.GameState.MustFirst(e.World))
}

// Roster returns the world's ordered registries.
func Roster(e *ecs.ECS) *components.RosterData {
	return components.Roster.Get(components.Roster.MustFirst(e.World))
}
