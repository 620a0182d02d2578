package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/coinburst/components"
	cfg "github.com/automoto/coinburst/config"
)

// UpdateTweens advances looping offset tweens on anchor objects. The demo
// uses this to keep the target anchor moving, proving that flights bend
// toward live anchor positions.
func UpdateTweens(e *ecs.ECS) {
	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		if tw.Sequence == nil || !entry.HasComponent(components.Object) {
			return
		}
		offset, _, seqDone := tw.Sequence.Update(1.0 / cfg.TPS)
		if seqDone {
			tw.Sequence.Reset()
		}
		obj := components.Object.Get(entry)
		obj.Y = tw.BaseY + float64(offset)
		obj.Update()
	})
}
