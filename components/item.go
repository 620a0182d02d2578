package components

import (
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"github.com/automoto/coinburst/config"
)

// ItemPhase is the lifecycle state of one flying token.
type ItemPhase int

const (
	ItemSpawning  ItemPhase = iota // created, not yet sized
	ItemMeasuring                  // waiting for payload measurement
	ItemFlying                     // advancing along the arc
	ItemCompleting                 // reached the target, tearing down
)

func (p ItemPhase) String() string {
	switch p {
	case ItemSpawning:
		return "spawning"
	case ItemMeasuring:
		return "measuring"
	case ItemFlying:
		return "flying"
	case ItemCompleting:
		return "completing"
	}
	return "unknown"
}

// ItemData is one flying token. The entity additionally carries an Object
// component whose rectangle is the token's current center position and
// measured size.
type ItemData struct {
	Instance   donburi.Entity // owning instance entity
	InstanceID uint64         // for debug messages only

	Payload config.Payload

	Phase ItemPhase

	// Randomized flight parameters, fixed at spawn.
	DurationTicks int
	ArcHeight     float64
	PathOffset    float64 // lateral control point shift
	StartOffsetX  float64 // offset from the source anchor center
	StartOffsetY  float64
	EndOffsetX    float64 // offset from the target anchor center
	EndOffsetY    float64
	ZIndex        int
	Easing        ease.TweenFunc

	ElapsedTicks int
	Scale        float64 // last computed render scale

	Reached bool // has this item already counted toward its instance's reaching total
}

// Progress returns the normalized flight progress in [0, 1].
func (it *ItemData) Progress() float64 {
	if it.DurationTicks <= 0 {
		return 1
	}
	p := float64(it.ElapsedTicks) / float64(it.DurationTicks)
	if p > 1 {
		p = 1
	}
	return p
}

// EasedProgress applies the item's easing curve to its raw progress.
func (it *ItemData) EasedProgress() float64 {
	t := it.Progress()
	if it.Easing == nil {
		return t
	}
	return float64(it.Easing(float32(t), 0, 1, 1))
}

var Item = donburi.NewComponentType[ItemData]()
