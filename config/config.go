package config

import (
	"fmt"
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// TPS is the fixed tick rate every duration conversion assumes. Ebiten's
// default update rate matches this; the systems never read the wall clock.
const TPS = 60

// Default is the single render layer used by all archetypes.
const Default ecs.LayerID = 0

type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Demo DemoConfig
var Debug DebugConfig

// DemoConfig contains layout values for the demo scene.
type DemoConfig struct {
	SourceX, SourceY float64 // source anchor top-left
	SourceW, SourceH float64
	TargetX, TargetY float64 // target anchor top-left
	TargetW, TargetH float64

	WobbleAmplitude float64 // vertical travel of the target anchor tween
	WobbleDuration  float32 // seconds per half cycle
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StartWithOverlay bool // Show the debug overlay immediately
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold         = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	BrightGold   = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	Emerald      = color.RGBA{R: 60, G: 220, B: 120, A: 255}
	SkyBlue      = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkPanel    = color.RGBA{R: 20, G: 20, B: 30, A: 255}
)

// MillisToTicks converts a millisecond duration to whole ticks at TPS,
// never returning less than one tick for a positive duration.
func MillisToTicks(ms float64) int {
	if ms <= 0 {
		return 0
	}
	ticks := int(ms*TPS/1000.0 + 0.5)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Demo = DemoConfig{
		SourceX: 60,
		SourceY: 240,
		SourceW: 64,
		SourceH: 48,

		TargetX: 520,
		TargetY: 70,
		TargetW: 72,
		TargetH: 56,

		WobbleAmplitude: 24,
		WobbleDuration:  1.5,
	}

	Debug = DebugConfig{
		StartWithOverlay: false,
	}
}

// Range is a closed-open numeric interval items sample their parameters from.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Fixed returns a range that always samples to v.
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

func (r Range) valid() bool {
	return r.Min <= r.Max
}

// PayloadKind discriminates the two payload variants.
type PayloadKind int

const (
	PayloadText PayloadKind = iota
	PayloadImage
)

// Payload is one renderable token template. Exactly one of Text or Image is
// meaningful, selected by Kind. Image payloads size themselves from their
// image bounds; text payloads are measured against the HUD font with the
// configured item size as fallback.
type Payload struct {
	Kind  PayloadKind
	Text  string
	Image PayloadImageRef
}

// PayloadImageRef defers image lookup to draw/measure time so that headless
// code (scheduler, flight, registry) never touches graphics resources.
type PayloadImageRef struct {
	Key string // asset key, resolved by the assets package
	W   int    // intrinsic size; zero means "use configured item size"
	H   int
}

// TextPayload builds a primitive text/number token template.
func TextPayload(s string) Payload {
	return Payload{Kind: PayloadText, Text: s}
}

// ImagePayload builds a composite token template referencing an asset key.
func ImagePayload(key string, w, h int) Payload {
	return Payload{Kind: PayloadImage, Image: PayloadImageRef{Key: key, W: w, H: h}}
}

// BurstConfig describes one burst run. It is copied onto the instance at
// start time; later mutation by the caller has no effect on a running burst.
type BurstConfig struct {
	Payloads []Payload // non-empty set of token templates

	Count      int     // total items to spawn, >= 1
	BatchCount int     // number of spawn batches, >= 1
	BatchDelay float64 // milliseconds between batch starts

	ItemSize float64 // fallback square size for tokens, pixels

	Duration    Range // per-item flight duration, milliseconds
	ArcHeight   Range // vertical lift of the Bézier control point, pixels
	PathOffset  Range // lateral shift of the control point, pixels
	StartOffset Range // random offset around the source anchor center, pixels
	EndOffset   Range // random offset around the target anchor center, pixels
	ZIndex      Range // draw order within the overlay

	ShrinkAtEnd    float64 // 0..1, how much the token shrinks over the last stretch
	ReachThreshold float64 // 0..1, progress at which an item counts as "reaching"

	Easing string // easing curve name, see EasingByName; empty = linear

	OnReached  func() // fired at most once per burst, first threshold crossing
	OnComplete func() // fired at most once per burst, all items finished

	SpawnJitter float64 // milliseconds of per-item spawn jitter within a batch

	Debug bool
}

// DefaultBurst returns a config with the stock coin-swarm feel.
func DefaultBurst() BurstConfig {
	return BurstConfig{
		Payloads:       []Payload{ImagePayload("coin", 16, 16)},
		Count:          20,
		BatchCount:     4,
		BatchDelay:     150,
		ItemSize:       16,
		Duration:       Range{Min: 600, Max: 1200},
		ArcHeight:      Range{Min: 40, Max: 120},
		PathOffset:     Range{Min: -60, Max: 60},
		StartOffset:    Range{Min: -20, Max: 20},
		EndOffset:      Range{Min: -10, Max: 10},
		ZIndex:         Range{Min: 0, Max: 10},
		ShrinkAtEnd:    0.5,
		ReachThreshold: 0.85,
		Easing:         "linear",
		SpawnJitter:    200,
	}
}

// Validate reports the first violated burst invariant.
func (c *BurstConfig) Validate() error {
	if len(c.Payloads) == 0 {
		return fmt.Errorf("burst config: empty payload set")
	}
	if c.Count < 1 {
		return fmt.Errorf("burst config: count %d < 1", c.Count)
	}
	if c.BatchCount < 1 {
		return fmt.Errorf("burst config: batch count %d < 1", c.BatchCount)
	}
	if c.BatchDelay < 0 {
		return fmt.Errorf("burst config: negative batch delay %v", c.BatchDelay)
	}
	if c.SpawnJitter < 0 {
		return fmt.Errorf("burst config: negative spawn jitter %v", c.SpawnJitter)
	}
	for _, r := range []struct {
		name string
		r    Range
	}{
		{"duration", c.Duration},
		{"arc height", c.ArcHeight},
		{"path offset", c.PathOffset},
		{"start offset", c.StartOffset},
		{"end offset", c.EndOffset},
		{"z index", c.ZIndex},
	} {
		if !r.r.valid() {
			return fmt.Errorf("burst config: %s range min %v > max %v", r.name, r.r.Min, r.r.Max)
		}
	}
	if c.Duration.Min <= 0 {
		return fmt.Errorf("burst config: duration must be positive, got min %v", c.Duration.Min)
	}
	if c.ShrinkAtEnd < 0 || c.ShrinkAtEnd > 1 {
		return fmt.Errorf("burst config: shrink at end %v outside [0,1]", c.ShrinkAtEnd)
	}
	if c.ReachThreshold < 0 || c.ReachThreshold > 1 {
		return fmt.Errorf("burst config: reach threshold %v outside [0,1]", c.ReachThreshold)
	}
	return nil
}
