package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// PresetPayload is the YAML form of a payload template.
type PresetPayload struct {
	Text  string `yaml:"text"`
	Image string `yaml:"image"`
	W     int    `yaml:"w"`
	H     int    `yaml:"h"`
}

// Preset is the YAML form of a burst configuration. Durations are
// milliseconds, mirroring BurstConfig.
type Preset struct {
	Name           string          `yaml:"name"`
	Payloads       []PresetPayload `yaml:"payloads"`
	Count          int             `yaml:"count"`
	BatchCount     int             `yaml:"batchCount"`
	BatchDelay     float64         `yaml:"batchDelay"`
	ItemSize       float64         `yaml:"itemSize"`
	Duration       Range           `yaml:"duration"`
	ArcHeight      Range           `yaml:"arcHeight"`
	PathOffset     Range           `yaml:"pathOffset"`
	StartOffset    Range           `yaml:"startOffset"`
	EndOffset      Range           `yaml:"endOffset"`
	ZIndex         Range           `yaml:"zIndex"`
	ShrinkAtEnd    float64         `yaml:"shrinkAtEnd"`
	ReachThreshold float64         `yaml:"reachThreshold"`
	Easing         string          `yaml:"easing"`
	SpawnJitter    float64         `yaml:"spawnJitter"`
}

// Burst converts the preset into a runnable config. Callbacks and the debug
// flag are left for the caller to fill in.
func (p *Preset) Burst() BurstConfig {
	cfg := BurstConfig{
		Count:          p.Count,
		BatchCount:     p.BatchCount,
		BatchDelay:     p.BatchDelay,
		ItemSize:       p.ItemSize,
		Duration:       p.Duration,
		ArcHeight:      p.ArcHeight,
		PathOffset:     p.PathOffset,
		StartOffset:    p.StartOffset,
		EndOffset:      p.EndOffset,
		ZIndex:         p.ZIndex,
		ShrinkAtEnd:    p.ShrinkAtEnd,
		ReachThreshold: p.ReachThreshold,
		Easing:         p.Easing,
		SpawnJitter:    p.SpawnJitter,
	}
	for _, pl := range p.Payloads {
		if pl.Image != "" {
			cfg.Payloads = append(cfg.Payloads, ImagePayload(pl.Image, pl.W, pl.H))
		} else {
			cfg.Payloads = append(cfg.Payloads, TextPayload(pl.Text))
		}
	}
	return cfg
}

// LoadPresets parses the embedded preset list and validates every entry.
func LoadPresets() ([]Preset, error) {
	return ParsePresets(presetsYAML)
}

// ParsePresets parses a YAML preset document.
func ParsePresets(data []byte) ([]Preset, error) {
	var doc struct {
		Presets []Preset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	for i := range doc.Presets {
		cfg := doc.Presets[i].Burst()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", doc.Presets[i].Name, err)
		}
	}
	return doc.Presets, nil
}
