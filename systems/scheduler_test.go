package systems

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/automoto/coinburst/components"
)

func TestStartBurstSchedulesBatches(t *testing.T) {
	e := newTestECS()
	source, target := newTestAnchors(e)

	burst := testBurst(10)
	burst.BatchCount = 3
	burst.BatchDelay = 150 // 9 ticks
	burst.SpawnJitter = 200 // up to 12 ticks
	StartBurst(e, burst, source.Entity(), target.Entity())

	if got := countPending(e); got != 10 {
		t.Fatalf("pending spawns = %d, want 10", got)
	}

	perBatch := map[int]int{}
	components.PendingSpawn.Each(e.World, func(entry *donburi.Entry) {
		ps := components.PendingSpawn.Get(entry)
		perBatch[ps.Batch]++
		lo := ps.Batch * 9
		hi := lo + 12
		if ps.DelayTicks < lo || ps.DelayTicks > hi {
			t.Errorf("batch %d delay %d outside [%d, %d]", ps.Batch, ps.DelayTicks, lo, hi)
		}
	})
	want := map[int]int{0: 4, 1: 4, 2: 2}
	for b, n := range want {
		if perBatch[b] != n {
			t.Errorf("batch %d has %d items, want %d", b, perBatch[b], n)
		}
	}
}

func TestStartBurstRejectsInvalidConfig(t *testing.T) {
	e := newTestECS()
	source, target := newTestAnchors(e)

	burst := testBurst(0) // count < 1
	StartBurst(e, burst, source.Entity(), target.Entity())

	if countPending(e) != 0 || countInstances(e) != 0 {
		t.Fatal("invalid config must not allocate anything")
	}
	if s := Stats(e); s.IsAnimating {
		t.Error("stats should stay idle after rejected start")
	}
}

func TestStartBurstRejectsMissingAnchor(t *testing.T) {
	e := newTestECS()
	source, target := newTestAnchors(e)
	targetEntity := target.Entity()
	target.Remove()

	StartBurst(e, testBurst(5), source.Entity(), targetEntity)

	if countPending(e) != 0 || countInstances(e) != 0 {
		t.Fatal("missing anchor must not allocate anything")
	}
}

func TestStartBurstStatsReflectImmediately(t *testing.T) {
	e := newTestECS()
	source, target := newTestAnchors(e)

	StartBurst(e, testBurst(7), source.Entity(), target.Entity())

	s := Stats(e)
	if s.Total != 7 {
		t.Errorf("Total = %d, want 7", s.Total)
	}
	if !s.IsAnimating {
		t.Error("IsAnimating should be true right after start")
	}
}

func TestOverlappingBurstsAreIndependent(t *testing.T) {
	e := newTestECS()
	source, target := newTestAnchors(e)

	StartBurst(e, testBurst(4), source.Entity(), target.Entity())
	StartBurst(e, testBurst(6), source.Entity(), target.Entity())

	if got := countInstances(e); got != 2 {
		t.Fatalf("instances = %d, want 2", got)
	}
	ids := map[uint64]bool{}
	components.Instance.Each(e.World, func(entry *donburi.Entry) {
		ids[components.Instance.Get(entry).ID] = true
	})
	if len(ids) != 2 {
		t.Errorf("instance ids not unique: %v", ids)
	}
	if s := Stats(e); s.Total != 10 {
		t.Errorf("Total = %d, want 10", s.Total)
	}
}

func TestSchedulerSpawnTiming(t *testing.T) {
	e := newTestECS()
	source, target := newTestAnchors(e)

	// Two batches of one item, 50ms (3 ticks) apart, no jitter.
	burst := testBurst(2)
	burst.BatchCount = 2
	burst.BatchDelay = 50
	StartBurst(e, burst, source.Entity(), target.Entity())

	step(e) // batch 0 due immediately
	if got := countItems(e); got != 1 {
		t.Fatalf("after tick 1: items = %d, want 1", got)
	}
	stepN(e, 2) // ticks 2-3 decrement batch 1's delay
	if got := countItems(e); got != 1 {
		t.Fatalf("after tick 3: items = %d, want 1", got)
	}
	step(e) // tick 4 spawns batch 1
	if got := countItems(e); got != 2 {
		t.Fatalf("after tick 4: items = %d, want 2", got)
	}
	if countPending(e) != 0 {
		t.Error("pending spawns should be drained")
	}
}

func TestSchedulerDropsStaleSpawns(t *testing.T) {
	e := newTestECS()
	source, target := newTestAnchors(e)

	StartBurst(e, testBurst(3), source.Entity(), target.Entity())
	instanceEntry, _ := components.Instance.First(e.World)
	instanceEntry.Remove()

	step(e)
	if got := countItems(e); got != 0 {
		t.Errorf("stale spawns produced %d items, want 0", got)
	}
	if got := countPending(e); got != 0 {
		t.Errorf("stale spawns not drained, %d left", got)
	}
}

func TestStartBurstCopiesConfig(t *testing.T) {
	e := newTestECS()
	source, target := newTestAnchors(e)

	burst := testBurst(2)
	StartBurst(e, burst, source.Entity(), target.Entity())
	burst.Count = 99 // caller-side mutation must not leak into the run

	instanceEntry, ok := components.Instance.First(e.World)
	if !ok {
		t.Fatal("no instance")
	}
	if got := components.Instance.Get(instanceEntry).TargetCount; got != 2 {
		t.Errorf("TargetCount = %d, want 2", got)
	}
}
