// Package assets builds the demo's token art at runtime. Everything is
// procedural so the repository ships no binary image files; images are cached
// after first use.
package assets

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	cfg "github.com/automoto/coinburst/config"
	"github.com/automoto/coinburst/fonts"
)

var (
	images     = map[string]*ebiten.Image{}
	textImages = map[string]*ebiten.Image{}
)

// Get returns the token image for a known asset key, or nil for an unknown
// one. Known keys: "coin", "gem", "star".
func Get(key string) *ebiten.Image {
	if img, ok := images[key]; ok {
		return img
	}
	var img *ebiten.Image
	switch key {
	case "coin":
		img = buildCoin(16)
	case "gem":
		img = buildGem(14)
	case "star":
		img = buildStar(16)
	default:
		return nil
	}
	images[key] = img
	return img
}

// TextImage renders a text payload once and caches it. Returns nil when the
// token font has not been loaded.
func TextImage(s string) *ebiten.Image {
	if img, ok := textImages[s]; ok {
		return img
	}
	face, ok := fonts.Token.TryGet()
	if !ok || s == "" {
		return nil
	}
	bounds, _ := font.BoundString(face, s)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}
	img := ebiten.NewImage(w, h)
	text.Draw(img, s, face, -bounds.Min.X.Floor(), -bounds.Min.Y.Floor(), cfg.BrightGold) //nolint:staticcheck
	textImages[s] = img
	return img
}

func buildCoin(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	r := float32(size) / 2
	vector.DrawFilledCircle(img, r, r, r, color.RGBA{180, 130, 20, 255}, true)
	vector.DrawFilledCircle(img, r, r, r-1.5, cfg.Gold, true)
	// Highlight
	vector.DrawFilledCircle(img, r-r/3, r-r/3, r/4, cfg.BrightGold, true)
	return img
}

func buildGem(size int) *ebiten.Image {
	// A diamond is a square rotated 45 degrees.
	side := float64(size) / math.Sqrt2
	square := ebiten.NewImage(int(side), int(side))
	square.Fill(cfg.Emerald)
	vector.DrawFilledRect(square, float32(side)/4, float32(side)/4, float32(side)/4, float32(side)/4,
		color.RGBA{160, 255, 200, 255}, false)

	img := ebiten.NewImage(size, size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-side/2, -side/2)
	op.GeoM.Rotate(math.Pi / 4)
	op.GeoM.Translate(float64(size)/2, float64(size)/2)
	img.DrawImage(square, op)
	return img
}

func buildStar(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	// Four thick rays plus a bright core reads as a star at token sizes.
	vector.StrokeLine(img, c, 0, c, float32(size), 2, cfg.BrightGold, true)
	vector.StrokeLine(img, 0, c, float32(size), c, 2, cfg.BrightGold, true)
	vector.StrokeLine(img, c/2, c/2, float32(size)-c/2, float32(size)-c/2, 1, cfg.Gold, true)
	vector.StrokeLine(img, float32(size)-c/2, c/2, c/2, float32(size)-c/2, 1, cfg.Gold, true)
	vector.DrawFilledCircle(img, c, c, c/3, cfg.White, true)
	return img
}
