package systems

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/coinburst/components"
	"github.com/automoto/coinburst/shared/gamemath"
	"github.com/automoto/coinburst/systems/factory"
)

// Debugf records a message on the debug channel: the log sink and the
// DebugInfo field of the aggregate snapshot. Advisory only.
func Debugf(e *ecs.ECS, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("coinburst: %s", msg)
	factory.GetOrCreateBurstState(e).DebugInfo = msg
}

// DrawDebug renders flight paths, item phases and scheduler state when any
// live burst asked for debug output.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	stateEntry, ok := components.BurstState.First(e.World)
	if !ok || !components.BurstState.Get(stateEntry).Debug {
		return
	}

	pathColor := color.RGBA{255, 255, 255, 60}
	components.Item.Each(e.World, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		instanceEntry := e.World.Entry(item.Instance)
		if !instanceEntry.Valid() || !instanceEntry.HasComponent(components.Instance) {
			return
		}
		inst := components.Instance.Get(instanceEntry)

		srcEntry := e.World.Entry(inst.SourceAnchor)
		dstEntry := e.World.Entry(inst.TargetAnchor)
		if !anchorEntryUsable(srcEntry) || !anchorEntryUsable(dstEntry) {
			return
		}
		src := components.Object.Get(srcEntry)
		dst := components.Object.Get(dstEntry)
		sx := src.CenterX() + item.StartOffsetX
		sy := src.CenterY() + item.StartOffsetY
		ex := dst.CenterX() + item.EndOffsetX
		ey := dst.CenterY() + item.EndOffsetY
		cx, cy := gamemath.FlightControlPoint(sx, sy, ex, ey, item.ArcHeight, item.PathOffset)

		// Polyline approximation of the arc.
		px, py := sx, sy
		const steps = 16
		for i := 1; i <= steps; i++ {
			t := float64(i) / steps
			x, y := gamemath.QuadBezier(sx, sy, cx, cy, ex, ey, t)
			vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 1, pathColor, false)
			px, py = x, y
		}

		obj := components.Object.Get(entry)
		markerColor := color.RGBA{100, 255, 100, 255}
		if item.Reached {
			markerColor = color.RGBA{255, 120, 40, 255}
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, markerColor, false)
	})

	pending := 0
	components.PendingSpawn.Each(e.World, func(entry *donburi.Entry) {
		pending++
	})
	snap := Stats(e)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"pending: %d\nreaching: %d\ncompleted: %d/%d\n%s",
		pending, snap.Reaching, snap.Completed, snap.Total, snap.DebugInfo,
	), 8, 40)
}
