package adapter

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/glide/anim"
	"github.com/matt-g-everett/glide/easing"
)

// FogTransitionID is the animation id of AnimateFog.
const FogTransitionID = "fog-transition"

const DefaultFogDuration = 2 * time.Second

// Fog is the atmosphere of a map view. Unset fields are nil or empty and
// are left out of transitions.
type Fog struct {
	Range         []float64 `yaml:"range,omitempty" json:"range,omitempty"`
	Color         string    `yaml:"color,omitempty" json:"color,omitempty"`
	HighColor     string    `yaml:"high-color,omitempty" json:"high-color,omitempty"`
	SpaceColor    string    `yaml:"space-color,omitempty" json:"space-color,omitempty"`
	HorizonBlend  *float64  `yaml:"horizon-blend,omitempty" json:"horizon-blend,omitempty"`
	StarIntensity *float64  `yaml:"star-intensity,omitempty" json:"star-intensity,omitempty"`
}

// FogOptions configure AnimateFog. Easing defaults to
// easing.EaseInOutCubic.
type FogOptions struct {
	Duration time.Duration
	Easing   easing.Func
	// BlendColors mixes hex colours in HCL space instead of switching
	// from the start to the target colour half way.
	BlendColors bool
	// OnComplete is called when the target fog is reached.
	OnComplete func()
}

// AnimateFog transitions the fog from one configuration to another.
func AnimateFog(ctrl *anim.Controller, atmosphere Atmosphere, from, to Fog, opts FogOptions) *anim.Handle {
	a := anim.Options{Duration: opts.Duration, Easing: opts.Easing, OnComplete: opts.OnComplete}
	if a.Duration == 0 {
		a.Duration = DefaultFogDuration
	}
	if a.Easing == nil {
		a.Easing = easing.EaseInOutCubic
	}
	a.OnUpdate = func(progress, _ float64) {
		atmosphere.SetFog(InterpolateFog(from, to, progress, opts.BlendColors))
	}
	return ctrl.Start(FogTransitionID, a)
}

// InterpolateFog computes the fog at progress between from and to.
// Numeric fields and the range are interpolated when both ends set them.
// Colours come from the start before progress 0.5 and from the target
// after, unless blend is set and both are hex colours.
func InterpolateFog(from, to Fog, progress float64, blend bool) Fog {
	var out Fog
	out.HorizonBlend = lerpOptional(from.HorizonBlend, to.HorizonBlend, progress)
	out.StarIntensity = lerpOptional(from.StarIntensity, to.StarIntensity, progress)
	out.Color = pickColor(from.Color, to.Color, progress, blend)
	out.HighColor = pickColor(from.HighColor, to.HighColor, progress, blend)
	out.SpaceColor = pickColor(from.SpaceColor, to.SpaceColor, progress, blend)
	if len(from.Range) == 2 && len(to.Range) == 2 {
		out.Range = []float64{
			lerp(from.Range[0], to.Range[0], progress),
			lerp(from.Range[1], to.Range[1], progress),
		}
	}
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpOptional(a, b *float64, t float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	v := lerp(*a, *b, t)
	return &v
}

func pickColor(from, to string, progress float64, blend bool) string {
	if blend && from != "" && to != "" {
		c1, err1 := colorful.Hex(from)
		c2, err2 := colorful.Hex(to)
		if err1 == nil && err2 == nil {
			return c1.BlendHcl(c2, progress).Clamped().Hex()
		}
	}
	if progress >= 0.5 {
		return to
	}
	return from
}
