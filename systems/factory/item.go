package factory

import (
	"log"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/coinburst/archetypes"
	"github.com/automoto/coinburst/components"
	cfg "github.com/automoto/coinburst/config"
	"github.com/automoto/coinburst/shared/randutil"
)

// SpawnItem creates one flying token owned by the given instance. All
// randomized flight parameters are fixed here; only the anchor endpoints are
// re-sampled during flight.
func SpawnItem(e *ecs.ECS, instanceEntry *donburi.Entry) *donburi.Entry {
	inst := components.Instance.Get(instanceEntry)
	burst := &inst.Config
	state := GetOrCreateBurstState(e)
	rng := state.Rand

	payload, ok := randutil.Pick(rng, burst.Payloads)
	if !ok {
		// Config validation guarantees a non-empty set; bail defensively.
		return nil
	}

	entry := archetypes.Item.Spawn(e)

	durationMS := randutil.InRange(rng, burst.Duration.Min, burst.Duration.Max)
	item := &components.ItemData{
		Instance:      instanceEntry.Entity(),
		InstanceID:    inst.ID,
		Payload:       payload,
		Phase:         components.ItemSpawning,
		DurationTicks: cfg.MillisToTicks(durationMS),
		ArcHeight:     randutil.InRange(rng, burst.ArcHeight.Min, burst.ArcHeight.Max),
		PathOffset:    randutil.InRange(rng, burst.PathOffset.Min, burst.PathOffset.Max),
		StartOffsetX:  randutil.InRange(rng, burst.StartOffset.Min, burst.StartOffset.Max),
		StartOffsetY:  randutil.InRange(rng, burst.StartOffset.Min, burst.StartOffset.Max),
		EndOffsetX:    randutil.InRange(rng, burst.EndOffset.Min, burst.EndOffset.Max),
		EndOffsetY:    randutil.InRange(rng, burst.EndOffset.Min, burst.EndOffset.Max),
		ZIndex:        int(randutil.InRange(rng, burst.ZIndex.Min, burst.ZIndex.Max)),
		Easing:        cfg.EasingByName(burst.Easing),
		Scale:         1,
	}
	components.Item.Set(entry, item)

	// Start at the source anchor center plus the item's start offset. The
	// rectangle size is the static fallback until measurement runs.
	size := burst.ItemSize
	if size <= 0 {
		size = 1
	}
	x, y := spawnPoint(e, inst, item)
	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	obj.Data = entry
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.Set(entry, &components.ObjectData{Object: obj})

	inst.Spawned++
	if burst.Debug {
		log.Printf("burst %d: item spawned (%d/%d), duration %d ticks", inst.ID, inst.Spawned, inst.TargetCount, item.DurationTicks)
	}
	return entry
}

// spawnPoint returns the item's launch center. Falls back to the origin if
// the source anchor has already been torn down; the flight system will
// detect the orphan on its first tick.
func spawnPoint(e *ecs.ECS, inst *components.InstanceData, item *components.ItemData) (float64, float64) {
	srcEntry := e.World.Entry(inst.SourceAnchor)
	if !srcEntry.Valid() || !srcEntry.HasComponent(components.Object) {
		return 0, 0
	}
	src := components.Object.Get(srcEntry)
	return src.CenterX() + item.StartOffsetX, src.CenterY() + item.StartOffsetY
}
