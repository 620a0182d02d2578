package randutil

import (
	"math/rand"
	"testing"
)

func TestInRangeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v := InRange(rng, -5, 5)
		if v < -5 || v >= 5 {
			t.Fatalf("sample %v outside [-5, 5)", v)
		}
	}
}

func TestInRangeDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if v := InRange(rng, 7, 7); v != 7 {
		t.Errorf("degenerate range returned %v, want 7", v)
	}
	// An inverted range behaves like a degenerate one rather than panicking.
	if v := InRange(rng, 3, 1); v != 3 {
		t.Errorf("inverted range returned %v, want 3", v)
	}
}

func TestPickEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, ok := Pick(rng, []string(nil)); ok {
		t.Error("picking from an empty slice should report failure")
	}
}

func TestPickCoversAllItems(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := []int{10, 20, 30}
	seen := map[int]bool{}
	for i := 0; i < 300; i++ {
		v, ok := Pick(rng, items)
		if !ok {
			t.Fatal("pick from non-empty slice failed")
		}
		seen[v] = true
	}
	for _, item := range items {
		if !seen[item] {
			t.Errorf("item %d never picked in 300 draws", item)
		}
	}
}
