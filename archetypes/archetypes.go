package archetypes

import (
	"slices"

	"github.com/automoto/blockdude/components"
	cfg "github.com/automoto/blockdude/config"
	"github.com/automoto/blockdude/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Block = newArchetype(
		tags.Block,
		components.Body,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Motion,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Motion,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Body,
	)
	Space = newArchetype(
		components.Space,
		components.Geometry,
	)
	World = newArchetype(
		components.Roster,
		components.Level,
		components.GameState,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		slices.Concat(a.components, cs)...,
	))
	return e
}
