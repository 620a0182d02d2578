package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/coinburst/components"
)

// Teardown cancels every pending spawn, destroys every live item, clears
// the instance registry without firing callbacks, and disposes the shared
// overlay. Afterward the aggregate snapshot reads empty; anchors and the
// space are left alone since they are externally owned.
func Teardown(e *ecs.ECS) {
	var pending, items, instances []*donburi.Entry

	components.PendingSpawn.Each(e.World, func(entry *donburi.Entry) {
		pending = append(pending, entry)
	})
	components.Item.Each(e.World, func(entry *donburi.Entry) {
		items = append(items, entry)
	})
	components.Instance.Each(e.World, func(entry *donburi.Entry) {
		instances = append(instances, entry)
	})

	for _, entry := range pending {
		entry.Remove()
	}
	for _, entry := range items {
		destroyItem(e, entry)
	}
	// Callbacks are a liveness signal, not guaranteed delivery: an in-flight
	// instance torn down here fires nothing.
	for _, entry := range instances {
		entry.Remove()
	}

	if overlayEntry, ok := components.Overlay.First(e.World); ok {
		overlay := components.Overlay.Get(overlayEntry)
		if overlay.Image != nil {
			overlay.Image.Deallocate()
		}
		overlayEntry.Remove()
	}

	if stateEntry, ok := components.BurstState.First(e.World); ok {
		state := components.BurstState.Get(stateEntry)
		state.Debug = false
		state.DebugInfo = ""
	}

	UpdateStats(e)
}
