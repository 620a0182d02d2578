package systems

import (
	"golang.org/x/image/font"

	cfg "github.com/automoto/coinburst/config"
	"github.com/automoto/coinburst/fonts"
)

// measurePayload determines a token's rendered size. Text payloads are
// measured against the token font; image payloads carry their intrinsic
// size. A degenerate result (empty text, zero-sized ref, fonts not loaded)
// falls back to the statically configured item size.
func measurePayload(p cfg.Payload, itemSize float64) (w, h float64) {
	if itemSize <= 0 {
		itemSize = 1
	}

	switch p.Kind {
	case cfg.PayloadText:
		face, ok := fonts.Token.TryGet()
		if !ok || p.Text == "" {
			return itemSize, itemSize
		}
		bounds, _ := font.BoundString(face, p.Text)
		tw := float64((bounds.Max.X - bounds.Min.X).Ceil())
		th := float64((bounds.Max.Y - bounds.Min.Y).Ceil())
		if tw <= 0 || th <= 0 {
			return itemSize, itemSize
		}
		return tw, th

	case cfg.PayloadImage:
		if p.Image.W > 0 && p.Image.H > 0 {
			return float64(p.Image.W), float64(p.Image.H)
		}
		return itemSize, itemSize
	}
	return itemSize, itemSize
}
