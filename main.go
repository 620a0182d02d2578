package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/automoto/coinburst/config"
	"github.com/automoto/coinburst/fonts"
	"github.com/automoto/coinburst/scenes"
	"github.com/automoto/coinburst/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.Token, goregular.TTF, 14)
	fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, 11)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 16)

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewDemoScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("coinburst")

	// Initialize persistence and load saved demo settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
