package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/coinburst/components"
)

// Instance registry operations. All mutation of InstanceData funnels through
// these two functions, which run on the single update goroutine; that makes
// the fired-flag checks sufficient for at-most-once callback delivery even
// when several items cross the threshold on the same tick.

// RecordThresholdCrossing counts one item passing its instance's reach
// threshold. Fires the instance's OnReached callback the first time only.
func RecordThresholdCrossing(e *ecs.ECS, instanceEntry *donburi.Entry) {
	inst := components.Instance.Get(instanceEntry)
	inst.Reaching++
	if !inst.ReachedFired {
		inst.ReachedFired = true
		if inst.Config.Debug {
			Debugf(e, "burst %d: target reached", inst.ID)
		}
		if inst.Config.OnReached != nil {
			inst.Config.OnReached()
		}
	}
}

// RecordCompletion counts one finished item. The reaching count is
// decremented unconditionally and floored at zero: discrete frame sampling
// can complete an item that never registered a crossing.
func RecordCompletion(e *ecs.ECS, instanceEntry *donburi.Entry) {
	inst := components.Instance.Get(instanceEntry)
	inst.Completed++
	if inst.Completed > inst.TargetCount {
		inst.Completed = inst.TargetCount
	}
	inst.Reaching--
	if inst.Reaching < 0 {
		inst.Reaching = 0
	}
	if inst.Config.Debug {
		Debugf(e, "burst %d: item completed (%d/%d)", inst.ID, inst.Completed, inst.TargetCount)
	}
	removeIfFinished(e, instanceEntry)
}

// removeIfFinished retires an instance whose every item has completed,
// firing its completion callback exactly once (entity removal is what makes
// a second firing impossible).
func removeIfFinished(e *ecs.ECS, instanceEntry *donburi.Entry) {
	inst := components.Instance.Get(instanceEntry)
	if !inst.Finished() {
		return
	}
	onComplete := inst.Config.OnComplete
	debug := inst.Config.Debug
	id := inst.ID
	instanceEntry.Remove()
	if debug {
		Debugf(e, "burst %d: complete", id)
	}
	if onComplete != nil {
		onComplete()
	}
}
