package config

import "github.com/tanema/gween/ease"

// Easings maps preset-friendly curve names to gween easing functions.
// Applied to an item's normalized progress before the Bézier evaluation.
var Easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"outExpo":    ease.OutExpo,
	"outBack":    ease.OutBack,
}

// EasingByName resolves a curve name, defaulting to linear for unknown or
// empty names.
func EasingByName(name string) ease.TweenFunc {
	if fn, ok := Easings[name]; ok {
		return fn
	}
	return ease.Linear
}
