package archetypes

import (
	"github.com/automoto/crygeen/components"
	cfg "github.com/automoto/crygeen/config"
	"github.com/automoto/crygeen/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Panel = newArchetype(
		tags.Panel,
		components.Panel,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Velocity,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Lightning = newArchetype(
		components.Lightning,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
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
		append(a.components, cs...)...,
	))
	return e
}
