package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/coinburst/archetypes"
	"github.com/automoto/coinburst/assets"
	"github.com/automoto/coinburst/components"
	cfg "github.com/automoto/coinburst/config"
)

var itemDrawOp = &ebiten.DrawImageOptions{}

// DrawItems renders every flying token into the shared overlay and
// composites the overlay over the scene. The overlay is created lazily on
// the first draw with live items and survives until teardown.
func DrawItems(e *ecs.ECS, screen *ebiten.Image) {
	var entries []*donburi.Entry
	components.Item.Each(e.World, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		if item.Phase == components.ItemFlying {
			entries = append(entries, entry)
		}
	})

	overlayEntry, ok := components.Overlay.First(e.World)
	if !ok {
		if len(entries) == 0 {
			return
		}
		overlayEntry = archetypes.Overlay.Spawn(e)
		components.Overlay.Set(overlayEntry, &components.OverlayData{
			Image: ebiten.NewImage(screen.Bounds().Dx(), screen.Bounds().Dy()),
		})
	}
	overlay := components.Overlay.Get(overlayEntry)
	overlay.Image.Clear()

	// Ascending z-index; stable so same-z items keep spawn order.
	sort.SliceStable(entries, func(i, j int) bool {
		return components.Item.Get(entries[i]).ZIndex < components.Item.Get(entries[j]).ZIndex
	})

	for _, entry := range entries {
		item := components.Item.Get(entry)
		obj := components.Object.Get(entry)

		img := payloadImage(item)
		if img == nil {
			continue
		}
		iw := float64(img.Bounds().Dx())
		ih := float64(img.Bounds().Dy())
		if iw == 0 || ih == 0 {
			continue
		}

		// Fit the image to the measured rectangle, apply the flight scale,
		// and keep the Bézier point as the token's center.
		sx := obj.W / iw * item.Scale
		sy := obj.H / ih * item.Scale
		itemDrawOp.GeoM.Reset()
		itemDrawOp.GeoM.Translate(-iw/2, -ih/2)
		itemDrawOp.GeoM.Scale(sx, sy)
		itemDrawOp.GeoM.Translate(obj.CenterX(), obj.CenterY())
		overlay.Image.DrawImage(img, itemDrawOp)
	}

	screen.DrawImage(overlay.Image, nil)
}

func payloadImage(item *components.ItemData) *ebiten.Image {
	switch item.Payload.Kind {
	case cfg.PayloadText:
		return assets.TextImage(item.Payload.Text)
	default:
		return assets.Get(item.Payload.Image.Key)
	}
}
