package components

import "github.com/yohamta/donburi"

// PendingSpawnData is one scheduled item spawn. The entity itself is the
// cancellable timer handle: teardown deletes all of them wholesale.
type PendingSpawnData struct {
	Instance   donburi.Entity // owning instance entity
	DelayTicks int            // ticks until the item spawns
	Batch      int            // batch index, for debug output
}

var PendingSpawn = donburi.NewComponentType[PendingSpawnData]()
