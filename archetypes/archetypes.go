package archetypes

import (
	"github.com/automoto/flapping/components"
	cfg "github.com/automoto/flapping/config"
	"github.com/automoto/flapping/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
	)
	Match = newArchetype(
		components.Match,
	)
	Registration = newArchetype(
		components.Registration,
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
