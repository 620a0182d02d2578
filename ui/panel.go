package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// BurstPanel is the demo's ebitenui control strip: trigger a burst, cycle
// presets, toggle the debug overlay, tear everything down.
type BurstPanel struct {
	UI *ebitenui.UI

	// Callbacks
	OnBurst       func()
	OnCyclePreset func()
	OnToggleDebug func()
	OnTeardown    func()

	// Widget references for updates
	presetButton *widget.Button
	debugButton  *widget.Button

	// State queried on update
	PresetName func() string
	DebugOn    func() bool

	normalFace text.Face
}

// NewBurstPanel creates the control strip with its callbacks wired in.
func NewBurstPanel(onBurst, onCyclePreset, onToggleDebug, onTeardown func()) *BurstPanel {
	bp := &BurstPanel{
		OnBurst:       onBurst,
		OnCyclePreset: onCyclePreset,
		OnToggleDebug: onToggleDebug,
		OnTeardown:    onTeardown,
	}

	bp.loadFonts()
	bp.buildUI()

	return bp
}

func (bp *BurstPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bp.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (bp *BurstPanel) buildUI() {
	// Root container anchored to the bottom of the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	row.AddChild(bp.makeButton("Burst [Space]", func() {
		if bp.OnBurst != nil {
			bp.OnBurst()
		}
	}))

	bp.presetButton = bp.makeButton("Preset", func() {
		if bp.OnCyclePreset != nil {
			bp.OnCyclePreset()
		}
		bp.UpdateUI()
	})
	row.AddChild(bp.presetButton)

	bp.debugButton = bp.makeButton("Debug: off", func() {
		if bp.OnToggleDebug != nil {
			bp.OnToggleDebug()
		}
		bp.UpdateUI()
	})
	row.AddChild(bp.debugButton)

	row.AddChild(bp.makeButton("Clear [T]", func() {
		if bp.OnTeardown != nil {
			bp.OnTeardown()
		}
	}))

	rootContainer.AddChild(row)

	bp.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (bp *BurstPanel) makeButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(90, 22),
		),
		widget.ButtonOpts.Image(bp.buttonImage()),
		widget.ButtonOpts.Text(label, &bp.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// UpdateUI refreshes button labels from the scene's state.
func (bp *BurstPanel) UpdateUI() {
	if bp.presetButton != nil && bp.PresetName != nil {
		if textWidget := bp.presetButton.Text(); textWidget != nil {
			textWidget.Label = bp.PresetName()
		}
	}
	if bp.debugButton != nil && bp.DebugOn != nil {
		if textWidget := bp.debugButton.Text(); textWidget != nil {
			if bp.DebugOn() {
				textWidget.Label = "Debug: on"
			} else {
				textWidget.Label = "Debug: off"
			}
		}
	}
}

// Update advances the ebitenui widget tree.
func (bp *BurstPanel) Update() {
	bp.UI.Update()
}

func (bp *BurstPanel) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
