package systems

import (
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/coinburst/components"
	cfg "github.com/automoto/coinburst/config"
	"github.com/automoto/coinburst/systems/factory"
)

// newTestECS builds a headless world with a space and a fixed-seed RNG so
// scheduling is reproducible.
func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 360, 16, 16)
	factory.GetOrCreateBurstState(e).Rand = rand.New(rand.NewSource(1))
	return e
}

// newTestAnchors places the source at (0,0) and the target at (300,100), both
// 20x20, giving centers (10,10) and (310,110).
func newTestAnchors(e *ecs.ECS) (source, target *donburi.Entry) {
	source = factory.CreateSourceAnchor(e, 0, 0, 20, 20)
	target = factory.CreateTargetAnchor(e, 300, 100, 20, 20)
	return source, target
}

// step runs one full logic tick in the demo scene's system order.
func step(e *ecs.ECS) {
	UpdateScheduler(e)
	UpdateFlight(e)
	UpdateStats(e)
}

func stepN(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		step(e)
	}
}

// testBurst is a fully deterministic config: no batch delay, no jitter, all
// ranges fixed, image payloads so measurement never touches fonts. Duration
// 1000ms is 60 ticks.
func testBurst(count int) cfg.BurstConfig {
	return cfg.BurstConfig{
		Payloads:       []cfg.Payload{cfg.ImagePayload("coin", 16, 16)},
		Count:          count,
		BatchCount:     1,
		BatchDelay:     0,
		ItemSize:       16,
		Duration:       cfg.Fixed(1000),
		ArcHeight:      cfg.Fixed(50),
		PathOffset:     cfg.Fixed(0),
		StartOffset:    cfg.Fixed(0),
		EndOffset:      cfg.Fixed(0),
		ZIndex:         cfg.Fixed(0),
		ShrinkAtEnd:    0.5,
		ReachThreshold: 0.85,
		Easing:         "linear",
		SpawnJitter:    0,
	}
}

func countPending(e *ecs.ECS) int {
	n := 0
	components.PendingSpawn.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countItems(e *ecs.ECS) int {
	n := 0
	components.Item.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countInstances(e *ecs.ECS) int {
	n := 0
	components.Instance.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func firstItem(e *ecs.ECS) (*donburi.Entry, *components.ItemData) {
	entry, ok := components.Item.First(e.World)
	if !ok {
		return nil, nil
	}
	return entry, components.Item.Get(entry)
}
