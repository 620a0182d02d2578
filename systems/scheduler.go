package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/coinburst/archetypes"
	"github.com/automoto/coinburst/components"
	cfg "github.com/automoto/coinburst/config"
	"github.com/automoto/coinburst/shared/randutil"
	"github.com/automoto/coinburst/systems/factory"
)

// StartBurst begins one burst of flying tokens between the two anchors.
// Fire-and-forget: it returns immediately and may be called again while a
// previous burst is still in flight, yielding an independent instance.
//
// Precondition failures (invalid config, missing anchors) abort silently
// before any resource is allocated; with Debug set they are logged.
func StartBurst(e *ecs.ECS, burst cfg.BurstConfig, source, target donburi.Entity) {
	if err := burst.Validate(); err != nil {
		if burst.Debug {
			Debugf(e, "start aborted: %v", err)
		}
		return
	}
	if !anchorUsable(e, source) || !anchorUsable(e, target) {
		if burst.Debug {
			Debugf(e, "start aborted: missing anchor")
		}
		return
	}

	instanceEntry := factory.CreateInstance(e, burst, source, target)
	inst := components.Instance.Get(instanceEntry)
	state := factory.GetOrCreateBurstState(e)

	// Split the count into batchCount batches (last may be smaller) and give
	// every item a jittered delay so a batch never pops all at once.
	perBatch := (burst.Count + burst.BatchCount - 1) / burst.BatchCount
	batchDelayTicks := cfg.MillisToTicks(burst.BatchDelay)
	scheduled := 0
	for batch := 0; scheduled < burst.Count; batch++ {
		for i := 0; i < perBatch && scheduled < burst.Count; i++ {
			jitter := cfg.MillisToTicks(randutil.InRange(state.Rand, 0, burst.SpawnJitter))
			spawn := archetypes.PendingSpawn.Spawn(e)
			components.PendingSpawn.Set(spawn, &components.PendingSpawnData{
				Instance:   instanceEntry.Entity(),
				DelayTicks: batch*batchDelayTicks + jitter,
				Batch:      batch,
			})
			scheduled++
		}
	}

	if burst.Debug {
		Debugf(e, "burst %d: scheduled %d items in %d batches", inst.ID, scheduled, burst.BatchCount)
	}

	// The aggregate must reflect the new instance immediately, not on the
	// next tick.
	UpdateStats(e)
}

// UpdateScheduler advances pending spawn timers and spawns due items.
func UpdateScheduler(e *ecs.ECS) {
	var due []*donburi.Entry
	components.PendingSpawn.Each(e.World, func(entry *donburi.Entry) {
		ps := components.PendingSpawn.Get(entry)
		if ps.DelayTicks > 0 {
			ps.DelayTicks--
			return
		}
		due = append(due, entry)
	})

	for _, entry := range due {
		ps := components.PendingSpawn.Get(entry)
		instanceEntry := e.World.Entry(ps.Instance)
		if instanceEntry.Valid() && instanceEntry.HasComponent(components.Instance) {
			factory.SpawnItem(e, instanceEntry)
		}
		// A stale spawn whose instance was torn down is dropped silently.
		entry.Remove()
	}
}

func anchorUsable(e *ecs.ECS, anchor donburi.Entity) bool {
	entry := e.World.Entry(anchor)
	return entry.Valid() && entry.HasComponent(components.Object)
}
