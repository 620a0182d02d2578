package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a looping vertical offset on an entity's object, used by
// the demo to keep an anchor moving while items are in flight.
type TweenData struct {
	Sequence *gween.Sequence
	BaseY    float64 // object Y the tween offset is applied from
}

var Tween = donburi.NewComponentType[TweenData]()
