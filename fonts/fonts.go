package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	Token FontName = "token" // flying text payloads
	HUD   FontName = "hud"   // aggregate snapshot readout
	Title FontName = "title" // demo headings
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// TryGet returns the face and whether it has been loaded. Measurement code
// uses this so headless callers degrade to the configured fallback size.
func (f FontName) TryGet() (font.Face, bool) {
	face, ok := fonts[f]
	return face, ok
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 12)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
