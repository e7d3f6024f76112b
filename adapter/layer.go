package adapter

import (
	"time"

	"github.com/matt-g-everett/glide/anim"
	"github.com/matt-g-everett/glide/easing"
)

// ExtrusionHeight is the paint property holding 3D building heights.
const ExtrusionHeight = "fill-extrusion-height"

// BuildingsRiseID is the animation id of AnimateBuildingsRise.
const BuildingsRiseID = "buildings-rise"

const (
	DefaultPropertyDuration = time.Second
	DefaultRiseDuration     = 2 * time.Second
)

// PropertyOptions configure the layer adapters. Zero fields take the
// defaults; Easing defaults to easing.EaseOutCubic.
type PropertyOptions struct {
	Duration time.Duration
	Easing   easing.Func
}

func (o PropertyOptions) options(fallback time.Duration) anim.Options {
	opts := anim.Options{Duration: o.Duration, Easing: o.Easing}
	if opts.Duration == 0 {
		opts.Duration = fallback
	}
	if opts.Easing == nil {
		opts.Easing = easing.EaseOutCubic
	}
	return opts
}

// PropertyID is the animation id AnimateProperty uses for a layer
// property.
func PropertyID(layerID, property string) string {
	return "property-" + layerID + "-" + property
}

// AnimateProperty tweens a paint property. Numeric endpoints are
// interpolated. For fill-extrusion-height with a non-numeric endpoint the
// target expression is scaled by progress instead. Other values are left
// untouched.
func AnimateProperty(ctrl *anim.Controller, paint Paint, layerID, property string,
	from, to interface{}, opts PropertyOptions) *anim.Handle {

	a := opts.options(DefaultPropertyDuration)
	f, fromNumeric := number(from)
	t, toNumeric := number(to)
	a.OnUpdate = func(progress, _ float64) {
		switch {
		case fromNumeric && toNumeric:
			paint.SetPaintProperty(layerID, property, f+(t-f)*progress)
		case property == ExtrusionHeight:
			paint.SetPaintProperty(layerID, property, []interface{}{"*", to, progress})
		}
	}
	return ctrl.Start(PropertyID(layerID, property), a)
}

// AnimateBuildingsRise grows every extrusion from the ground to its
// "height" attribute.
func AnimateBuildingsRise(ctrl *anim.Controller, paint Paint, layerID string, opts PropertyOptions) *anim.Handle {
	a := opts.options(DefaultRiseDuration)
	a.OnUpdate = func(progress, _ float64) {
		paint.SetPaintProperty(layerID, ExtrusionHeight,
			[]interface{}{"*", []interface{}{"get", "height"}, progress})
	}
	return ctrl.Start(BuildingsRiseID, a)
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	}
	return 0, false
}
