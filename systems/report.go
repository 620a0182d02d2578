package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/coinburst/archetypes"
	"github.com/automoto/coinburst/components"
)

// UpdateStats folds all live instances into the externally observable
// snapshot. Runs after every registry mutation; cheap enough to run every
// tick unconditionally.
func UpdateStats(e *ecs.ECS) {
	snap := components.BurstStatsData{}
	instances := 0
	components.Instance.Each(e.World, func(entry *donburi.Entry) {
		inst := components.Instance.Get(entry)
		instances++
		snap.Total += inst.TargetCount
		snap.Completed += inst.Completed
		snap.Reaching += inst.Reaching
	})
	snap.IsAnimating = instances > 0
	snap.IsReachingTarget = snap.Reaching > 0
	if snap.Total > 0 {
		snap.Progress = float64(snap.Completed) / float64(snap.Total)
	}
	if stateEntry, ok := components.BurstState.First(e.World); ok {
		snap.DebugInfo = components.BurstState.Get(stateEntry).DebugInfo
	}

	*getOrCreateStats(e) = snap
}

// Stats returns the current aggregate snapshot.
func Stats(e *ecs.ECS) components.BurstStatsData {
	return *getOrCreateStats(e)
}

func getOrCreateStats(e *ecs.ECS) *components.BurstStatsData {
	entry, ok := components.BurstStats.First(e.World)
	if !ok {
		entry = archetypes.BurstStats.Spawn(e)
		components.BurstStats.Set(entry, &components.BurstStatsData{})
	}
	return components.BurstStats.Get(entry)
}
