package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/coinburst/config"
)

// InstanceData is the bookkeeping for one StartBurst call. Mutated only by
// the registry operations in the systems package.
//
// Invariants: 0 <= Completed <= TargetCount; 0 <= Reaching <= TargetCount -
// Completed; OnReached and OnComplete each fire at most once per instance
// lifetime.
type InstanceData struct {
	ID uint64 // monotonically increasing across the orchestrator's lifetime

	TargetCount int // items this instance will spawn in total
	Spawned     int // items spawned so far
	Completed   int // items that finished their flight
	Reaching    int // items currently past the reach threshold, not yet complete

	ReachedFired bool // OnReached already delivered

	Config config.BurstConfig

	// Anchor entities this burst flies between, polled fresh every tick.
	SourceAnchor donburi.Entity
	TargetAnchor donburi.Entity
}

// Finished reports whether every item of this instance has completed.
func (in *InstanceData) Finished() bool {
	return in.Completed >= in.TargetCount
}

var Instance = donburi.NewComponentType[InstanceData]()
