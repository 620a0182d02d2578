package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/coinburst/components"
	cfg "github.com/automoto/coinburst/config"
	"github.com/automoto/coinburst/tags"
)

var (
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Object,
	)
	Instance = newArchetype(
		tags.Instance,
		components.Instance,
	)
	PendingSpawn = newArchetype(
		tags.PendingSpawn,
		components.PendingSpawn,
	)
	SourceAnchor = newArchetype(
		tags.SourceAnchor,
		components.Object,
	)
	TargetAnchor = newArchetype(
		tags.TargetAnchor,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Overlay = newArchetype(
		components.Overlay,
	)
	BurstState = newArchetype(
		components.BurstState,
	)
	BurstStats = newArchetype(
		components.BurstStats,
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
