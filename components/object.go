package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps a resolv object used purely as a positioned rectangle:
// anchors and flying tokens never collide, they only occupy space.
type ObjectData struct {
	*resolv.Object
}

// CenterX returns the horizontal center of the rectangle.
func (o *ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

// CenterY returns the vertical center of the rectangle.
func (o *ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

// MoveCenterTo repositions the rectangle so its center lands on (x, y).
func (o *ObjectData) MoveCenterTo(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
