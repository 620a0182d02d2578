package systems

import (
	"testing"

	"github.com/automoto/coinburst/components"
	"github.com/automoto/coinburst/systems/factory"
)

func TestThresholdCrossingFiresOnce(t *testing.T) {
	e := newTestECS()
	source, target := newTestAnchors(e)

	var reached int
	burst := testBurst(3)
	burst.OnReached = func() { reached++ }
	instanceEntry := factory.CreateInstance(e, burst, source.Entity(), target.Entity())

	RecordThresholdCrossing(e, instanceEntry)
	RecordThresholdCrossing(e, instanceEntry)
	RecordThresholdCrossing(e, instanceEntry)

	if reached != 1 {
		t.Errorf("OnReached fired %d times, want 1", reached)
	}
	if got := components.Instance.Get(instanceEntry).Reaching; got != 3 {
		t.Errorf("Reaching = %d, want 3", got)
	}
}

func TestCompletionCountsAndRetires(t *testing.T) {
	e := newTestECS()
	source, target := newTestAnchors(e)

	var completed int
	burst := testBurst(2)
	burst.OnComplete = func() { completed++ }
	instanceEntry := factory.CreateInstance(e, burst, source.Entity(), target.Entity())

	RecordThresholdCrossing(e, instanceEntry)
	RecordCompletion(e, instanceEntry)
	inst := components.Instance.Get(instanceEntry)
	if inst.Completed != 1 || inst.Reaching != 0 {
		t.Errorf("after first completion: %+v", inst)
	}
	if completed != 0 {
		t.Fatal("OnComplete fired before the last item")
	}

	RecordCompletion(e, instanceEntry)
	if completed != 1 {
		t.Errorf("OnComplete fired %d times, want 1", completed)
	}
	if instanceEntry.Valid() {
		t.Error("finished instance should be removed")
	}
}

func TestReachingNeverGoesNegative(t *testing.T) {
	e := newTestECS()
	source, target := newTestAnchors(e)
	instanceEntry := factory.CreateInstance(e, testBurst(3), source.Entity(), target.Entity())

	// An item can complete without ever crossing the threshold; the
	// unconditional decrement floors at zero.
	RecordCompletion(e, instanceEntry)
	if got := components.Instance.Get(instanceEntry).Reaching; got != 0 {
		t.Errorf("Reaching = %d, want 0", got)
	}
}

func TestCompletedClampedToTarget(t *testing.T) {
	e := newTestECS()
	source, target := newTestAnchors(e)
	instanceEntry := factory.CreateInstance(e, testBurst(5), source.Entity(), target.Entity())

	inst := components.Instance.Get(instanceEntry)
	inst.Completed = 5 // duplicate reports beyond the target stay clamped
	RecordCompletion(e, instanceEntry)
	if instanceEntry.Valid() {
		t.Error("instance should retire at the target count")
	}
}
