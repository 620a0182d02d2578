package systems

import (
	"testing"

	"github.com/automoto/coinburst/components"
	"github.com/automoto/coinburst/systems/factory"
)

func TestStatsEmptyWorld(t *testing.T) {
	e := newTestECS()
	UpdateStats(e)

	s := Stats(e)
	if s.IsAnimating || s.IsReachingTarget {
		t.Errorf("empty world stats = %+v", s)
	}
	if s.Total != 0 || s.Completed != 0 || s.Reaching != 0 || s.Progress != 0 {
		t.Errorf("empty world counters = %+v, want zeros", s)
	}
}

func TestStatsAggregateAcrossInstances(t *testing.T) {
	e := newTestECS()
	source, target := newTestAnchors(e)

	a := factory.CreateInstance(e, testBurst(4), source.Entity(), target.Entity())
	b := factory.CreateInstance(e, testBurst(6), source.Entity(), target.Entity())
	components.Instance.Get(a).Completed = 2
	components.Instance.Get(a).Reaching = 1
	components.Instance.Get(b).Completed = 3

	UpdateStats(e)
	s := Stats(e)
	if s.Total != 10 || s.Completed != 5 || s.Reaching != 1 {
		t.Errorf("aggregate = %+v, want Total 10 Completed 5 Reaching 1", s)
	}
	if s.Progress != 0.5 {
		t.Errorf("Progress = %v, want 0.5", s.Progress)
	}
	if !s.IsAnimating || !s.IsReachingTarget {
		t.Errorf("flags = %+v, want animating and reaching", s)
	}
}

func TestStatsMirrorDebugInfo(t *testing.T) {
	e := newTestECS()
	Debugf(e, "burst %d: %s", 1, "hello")

	UpdateStats(e)
	if s := Stats(e); s.DebugInfo != "burst 1: hello" {
		t.Errorf("DebugInfo = %q", s.DebugInfo)
	}
}
