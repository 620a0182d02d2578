package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	cfg "github.com/automoto/coinburst/config"
	"github.com/automoto/coinburst/fonts"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
)

// Cached font face for HUD rendering (lazy initialized)
var hudFontFace font.Face

// DrawHUD renders the aggregate progress bar and counters in the top-left
// corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	snap := Stats(e)

	// Background (dark gray)
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	// Aggregate progress (gold)
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*float32(snap.Progress), float32(hudBarHeight),
		cfg.Gold, false)

	if hudFontFace == nil {
		if face, ok := fonts.HUD.TryGet(); ok {
			hudFontFace = face
		} else {
			return
		}
	}

	status := fmt.Sprintf("%d/%d", snap.Completed, snap.Total)
	if snap.IsReachingTarget {
		status += fmt.Sprintf("  reaching: %d", snap.Reaching)
	}
	if !snap.IsAnimating {
		status = "idle"
	}
	text.Draw(screen, status, hudFontFace, //nolint:staticcheck
		hudMargin+hudBarWidth+8, hudMargin+hudBarHeight-2, cfg.White)
}
