package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// OverlayData is the shared presentation surface every live item across
// every instance is drawn into. Created lazily on the first draw with live
// items, disposed on teardown. Singleton.
type OverlayData struct {
	Image *ebiten.Image
}

var Overlay = donburi.NewComponentType[OverlayData]()
