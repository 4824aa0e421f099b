package archetypes

import (
	"github.com/automoto/rubberball/components"
	cfg "github.com/automoto/rubberball/config"
	"github.com/automoto/rubberball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		tags.LevelScoped,
		components.Ball,
		components.Band,
		components.Object,
	)
	Area = newArchetype(
		tags.Area,
		tags.LevelScoped,
		components.Area,
		components.Object,
	)
	Space = newArchetype(
		tags.LevelScoped,
		components.Space,
	)
	Physics = newArchetype(
		tags.LevelScoped,
		components.Physics,
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
