package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// BurstStateData is the singleton orchestrator state: the instance id
// counter, the shared RNG and the debug channel.
type BurstStateData struct {
	NextInstanceID uint64
	Rand           *rand.Rand

	Debug     bool   // any live burst asked for debug output
	DebugInfo string // last debug message, mirrored into the stats snapshot
}

var BurstState = donburi.NewComponentType[BurstStateData]()
