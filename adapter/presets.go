package adapter

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

func f64(v float64) *float64 {
	return &v
}

// FogPresets holds the built-in fog configurations.
var FogPresets = map[string]Fog{
	"day": {
		Range:         []float64{0.5, 10},
		Color:         "white",
		HighColor:     "#245cdf",
		SpaceColor:    "#1d2a4d",
		HorizonBlend:  f64(0.05),
		StarIntensity: f64(0),
	},
	"night": {
		Range:         []float64{0.5, 10},
		Color:         "#242B4B",
		HighColor:     "#161B36",
		SpaceColor:    "#0B0D1C",
		HorizonBlend:  f64(0.1),
		StarIntensity: f64(0.8),
	},
	"dusk": {
		Range:         []float64{0.5, 10},
		Color:         "#dc9f9f",
		HighColor:     "#ec8943",
		SpaceColor:    "#1d1d3a",
		HorizonBlend:  f64(0.08),
		StarIntensity: f64(0.2),
	},
	"dawn": {
		Range:         []float64{0.5, 10},
		Color:         "#f0d9c0",
		HighColor:     "#f5a962",
		SpaceColor:    "#232342",
		HorizonBlend:  f64(0.06),
		StarIntensity: f64(0.1),
	},
}

// LoadFogPresets reads a YAML mapping of preset names to fog
// configurations and returns the built-in presets overridden and extended
// by it.
func LoadFogPresets(r io.Reader) (map[string]Fog, error) {
	var loaded map[string]Fog
	if err := yaml.NewDecoder(r).Decode(&loaded); err != nil && err != io.EOF {
		return nil, fmt.Errorf("fog presets: %w", err)
	}
	presets := make(map[string]Fog, len(FogPresets)+len(loaded))
	for name, fog := range FogPresets {
		presets[name] = fog
	}
	for name, fog := range loaded {
		if fog.Range != nil && len(fog.Range) != 2 {
			return nil, fmt.Errorf("fog preset %q: range needs two values, got %d", name, len(fog.Range))
		}
		presets[name] = fog
	}
	return presets, nil
}
