package factory

import (
	"math/rand"
	"time"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/coinburst/archetypes"
	"github.com/automoto/coinburst/components"
	cfg "github.com/automoto/coinburst/config"
)

// CreateSpace creates the singleton resolv space anchors and items live in.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, &components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// GetOrCreateBurstState returns the singleton orchestrator state, creating
// it with a time-seeded RNG on first use.
func GetOrCreateBurstState(e *ecs.ECS) *components.BurstStateData {
	entry, ok := components.BurstState.First(e.World)
	if !ok {
		entry = archetypes.BurstState.Spawn(e)
		components.BurstState.Set(entry, &components.BurstStateData{
			NextInstanceID: 1,
			Rand:           rand.New(rand.NewSource(time.Now().UnixNano())),
		})
	}
	return components.BurstState.Get(entry)
}

// CreateSourceAnchor creates the region items launch from.
func CreateSourceAnchor(e *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	entry := archetypes.SourceAnchor.Spawn(e)
	attachRect(e, entry, x, y, w, h)
	return entry
}

// CreateTargetAnchor creates the region items fly to.
func CreateTargetAnchor(e *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	entry := archetypes.TargetAnchor.Spawn(e)
	attachRect(e, entry, x, y, w, h)
	return entry
}

// attachRect gives an entity a non-colliding resolv rectangle, registered in
// the shared space when one exists.
func attachRect(e *ecs.ECS, entry *donburi.Entry, x, y, w, h float64) {
	obj := resolv.NewObject(x, y, w, h)
	obj.Data = entry
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.Set(entry, &components.ObjectData{Object: obj})
}

// CreateInstance registers one burst run and returns its entry. The caller
// has already validated the config.
func CreateInstance(e *ecs.ECS, burst cfg.BurstConfig, source, target donburi.Entity) *donburi.Entry {
	state := GetOrCreateBurstState(e)
	id := state.NextInstanceID
	state.NextInstanceID++

	entry := archetypes.Instance.Spawn(e)
	components.Instance.Set(entry, &components.InstanceData{
		ID:           id,
		TargetCount:  burst.Count,
		Config:       burst,
		SourceAnchor: source,
		TargetAnchor: target,
	})
	if burst.Debug {
		state.Debug = true
	}
	return entry
}
