package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/coinburst/components"
	cfg "github.com/automoto/coinburst/config"
	"github.com/automoto/coinburst/fonts"
	"github.com/automoto/coinburst/systems"
	"github.com/automoto/coinburst/systems/factory"
	"github.com/automoto/coinburst/ui"
)

// DemoScene shows the burst orchestrator against two anchors: a chest the
// tokens launch from and a wallet they fly into. The wallet wobbles on a
// tween so flights visibly bend toward a moving target.
type DemoScene struct {
	ecs  *ecs.ECS
	once sync.Once

	panel        *ui.BurstPanel
	presets      []cfg.Preset
	presetIndex  int
	debugOverlay bool

	source *donburi.Entry
	target *donburi.Entry

	// Frames remaining on the wallet's callback flashes.
	reachedFlash  int
	completeFlash int
}

// NewDemoScene creates the demo scene.
func NewDemoScene() *DemoScene {
	return &DemoScene{}
}

func (ds *DemoScene) Update() {
	ds.once.Do(ds.configure)

	ds.handleInput()
	ds.ecs.Update()
	ds.panel.Update()

	if ds.reachedFlash > 0 {
		ds.reachedFlash--
	}
	if ds.completeFlash > 0 {
		ds.completeFlash--
	}
}

func (ds *DemoScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.DarkPanel)

	if ds.ecs == nil {
		return
	}

	ds.drawAnchors(screen)
	ds.ecs.Draw(screen)
	ds.panel.UI.Draw(screen)
}

func (ds *DemoScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateTweens)
	e.AddSystem(systems.UpdateScheduler)
	e.AddSystem(systems.UpdateFlight)
	e.AddSystem(systems.UpdateStats)

	e.AddRenderer(cfg.Default, systems.DrawItems)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)

	d := cfg.Demo
	ds.source = factory.CreateSourceAnchor(e, d.SourceX, d.SourceY, d.SourceW, d.SourceH)
	ds.target = factory.CreateTargetAnchor(e, d.TargetX, d.TargetY, d.TargetW, d.TargetH)

	// The wallet bobs up and down on a looping tween.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, float32(-d.WobbleAmplitude), d.WobbleDuration, ease.InOutQuad),
		gween.New(float32(-d.WobbleAmplitude), 0, d.WobbleDuration, ease.InOutQuad),
	)
	ds.target.AddComponent(components.Tween)
	components.Tween.Set(ds.target, &components.TweenData{
		Sequence: tw,
		BaseY:    d.TargetY,
	})

	ds.ecs = e

	ds.loadPresets()
	ds.applySavedSettings()

	ds.panel = ui.NewBurstPanel(ds.triggerBurst, ds.cyclePreset, ds.toggleDebug, func() {
		systems.Teardown(ds.ecs)
	})
	ds.panel.PresetName = ds.presetName
	ds.panel.DebugOn = func() bool { return ds.debugOverlay }
	ds.panel.UpdateUI()
}

func (ds *DemoScene) loadPresets() {
	presets, err := cfg.LoadPresets()
	if err != nil {
		log.Printf("Warning: Could not load burst presets: %v", err)
		return
	}
	ds.presets = presets
}

func (ds *DemoScene) applySavedSettings() {
	saved, err := systems.LoadSettings()
	if err != nil || saved == nil {
		return
	}
	ds.debugOverlay = saved.DebugOverlay
	if saved.PresetIndex >= 0 && saved.PresetIndex < len(ds.presets) {
		ds.presetIndex = saved.PresetIndex
	}
}

func (ds *DemoScene) saveSettings() {
	_ = systems.SaveSettings(&systems.SavedSettings{
		DebugOverlay: ds.debugOverlay,
		PresetIndex:  ds.presetIndex,
	})
}

func (ds *DemoScene) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ds.triggerBurst()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		ds.cyclePreset()
		ds.panel.UpdateUI()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		ds.toggleDebug()
		ds.panel.UpdateUI()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		systems.Teardown(ds.ecs)
	}
}

func (ds *DemoScene) triggerBurst() {
	burst := ds.currentBurst()
	burst.Debug = ds.debugOverlay
	burst.OnReached = func() { ds.reachedFlash = 20 }
	burst.OnComplete = func() { ds.completeFlash = 30 }
	systems.StartBurst(ds.ecs, burst, ds.source.Entity(), ds.target.Entity())
}

func (ds *DemoScene) cyclePreset() {
	if len(ds.presets) == 0 {
		return
	}
	ds.presetIndex = (ds.presetIndex + 1) % len(ds.presets)
	ds.saveSettings()
}

func (ds *DemoScene) toggleDebug() {
	ds.debugOverlay = !ds.debugOverlay
	factory.GetOrCreateBurstState(ds.ecs).Debug = ds.debugOverlay
	ds.saveSettings()
}

func (ds *DemoScene) currentBurst() cfg.BurstConfig {
	if len(ds.presets) == 0 {
		return cfg.DefaultBurst()
	}
	return ds.presets[ds.presetIndex].Burst()
}

func (ds *DemoScene) presetName() string {
	if len(ds.presets) == 0 {
		return "Default"
	}
	return ds.presets[ds.presetIndex].Name
}

func (ds *DemoScene) drawAnchors(screen *ebiten.Image) {
	src := components.Object.Get(ds.source)
	dst := components.Object.Get(ds.target)

	// Chest
	vector.DrawFilledRect(screen, float32(src.X), float32(src.Y), float32(src.W), float32(src.H),
		color.RGBA{120, 80, 30, 255}, false)
	vector.StrokeRect(screen, float32(src.X), float32(src.Y), float32(src.W), float32(src.H),
		2, color.RGBA{80, 50, 20, 255}, false)

	// Wallet, flashing on callbacks
	walletColor := color.RGBA{50, 70, 120, 255}
	if ds.completeFlash > 0 {
		walletColor = color.RGBA{60, 160, 80, 255}
	} else if ds.reachedFlash > 0 {
		walletColor = color.RGBA{180, 150, 40, 255}
	}
	vector.DrawFilledRect(screen, float32(dst.X), float32(dst.Y), float32(dst.W), float32(dst.H),
		walletColor, false)
	vector.StrokeRect(screen, float32(dst.X), float32(dst.Y), float32(dst.W), float32(dst.H),
		2, cfg.SkyBlue, false)

	if face, ok := fonts.Title.TryGet(); ok {
		text.Draw(screen, "coinburst", face, 8, cfg.C.Height-8, cfg.White) //nolint:staticcheck
	}
}
