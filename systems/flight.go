package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/coinburst/components"
	"github.com/automoto/coinburst/shared/gamemath"
)

// UpdateFlight advances every live item by one tick: measurement, arc
// position, threshold detection and completion. Items whose instance has
// been torn down short-circuit straight to cleanup.
func UpdateFlight(e *ecs.ECS) {
	type finished struct {
		entry    *donburi.Entry
		instance *donburi.Entry
	}
	var done []finished
	var orphans []*donburi.Entry

	components.Item.Each(e.World, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)

		instanceEntry := e.World.Entry(item.Instance)
		if !instanceEntry.Valid() || !instanceEntry.HasComponent(components.Instance) {
			orphans = append(orphans, entry)
			return
		}
		inst := components.Instance.Get(instanceEntry)
		burst := &inst.Config

		switch item.Phase {
		case components.ItemSpawning:
			item.Phase = components.ItemMeasuring
			return

		case components.ItemMeasuring:
			w, h := measurePayload(item.Payload, burst.ItemSize)
			obj := components.Object.Get(entry)
			cx, cy := obj.CenterX(), obj.CenterY()
			obj.W, obj.H = w, h
			obj.MoveCenterTo(cx, cy)
			item.Phase = components.ItemFlying
			return
		}

		// Flying. Anchors are polled fresh every tick so moving anchors bend
		// live flights.
		srcEntry := e.World.Entry(inst.SourceAnchor)
		dstEntry := e.World.Entry(inst.TargetAnchor)
		if !anchorEntryUsable(srcEntry) || !anchorEntryUsable(dstEntry) {
			// An anchor vanished mid-flight. Finish the item immediately so
			// instance counts still converge.
			item.Phase = components.ItemCompleting
			done = append(done, finished{entry, instanceEntry})
			return
		}

		item.ElapsedTicks++
		t := item.Progress()

		src := components.Object.Get(srcEntry)
		dst := components.Object.Get(dstEntry)
		sx := src.CenterX() + item.StartOffsetX
		sy := src.CenterY() + item.StartOffsetY
		ex := dst.CenterX() + item.EndOffsetX
		ey := dst.CenterY() + item.EndOffsetY
		cx, cy := gamemath.FlightControlPoint(sx, sy, ex, ey, item.ArcHeight, item.PathOffset)

		x, y := gamemath.QuadBezier(sx, sy, cx, cy, ex, ey, item.EasedProgress())
		obj := components.Object.Get(entry)
		obj.MoveCenterTo(x, y)
		obj.Update()
		item.Scale = gamemath.FlightScale(t, burst.ShrinkAtEnd)

		// The crossing notification fires exactly once per item no matter how
		// many ticks straddle the threshold, and always before the item's own
		// completion notification.
		if !item.Reached && t >= burst.ReachThreshold {
			item.Reached = true
			RecordThresholdCrossing(e, instanceEntry)
		}

		if t >= 1 {
			item.Phase = components.ItemCompleting
			done = append(done, finished{entry, instanceEntry})
		}
	})

	for _, o := range orphans {
		destroyItem(e, o)
	}
	for _, f := range done {
		destroyItem(e, f.entry)
		if f.instance.Valid() {
			RecordCompletion(e, f.instance)
		}
	}
}

// destroyItem releases the item's rectangle and removes the entity. No
// instance notification happens here.
func destroyItem(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if spaceEntry, ok := components.Space.First(e.World); ok {
			if obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	entry.Remove()
}

func anchorEntryUsable(entry *donburi.Entry) bool {
	return entry.Valid() && entry.HasComponent(components.Object)
}
