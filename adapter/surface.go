/*
Package adapter configures animations that drive a map view: camera orbits
and flights along a path, paint property tweens, animated GeoJSON sources
and fog transitions.

The map view itself is reached through the small surface interfaces in
this file. Each adapter starts one animation on a shared anim.Controller
under a fixed id, so starting the same adapter again replaces the running
one.
*/
package adapter

import (
	"errors"

	"github.com/matt-g-everett/glide/anim"
	"github.com/npillmayer/schuko/tracing"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// tracer writes to trace with key 'adapter'
func tracer() tracing.Trace {
	return tracing.Select("adapter")
}

var (
	// ErrGeometryUnavailable is returned by adapters that need a
	// PathSampler when none was supplied.
	ErrGeometryUnavailable = errors.New("path sampler unavailable")

	// ErrShortPath is returned for paths with fewer than two points.
	ErrShortPath = errors.New("path needs at least two coordinates")
)

// CameraPose places the free camera. When LookAt is set the camera turns
// towards it; otherwise Pitch and Bearing orient it.
type CameraPose struct {
	Position orb.Point  `json:"position"`
	Altitude float64    `json:"altitude"`
	LookAt   *orb.Point `json:"lookAt,omitempty"`
	Pitch    float64    `json:"pitch"`
	Bearing  float64    `json:"bearing"`
}

// Camera is the free camera of a map view.
type Camera interface {
	// Bearing is the current camera bearing in degrees.
	Bearing() float64
	SetCamera(pose CameraPose)
}

// Paint sets layer paint properties.
type Paint interface {
	SetPaintProperty(layerID, property string, value interface{})
}

// Source replaces the data of a GeoJSON source.
type Source interface {
	SetSourceData(sourceID string, data *geojson.Feature)
}

// Atmosphere sets the fog of a map view.
type Atmosphere interface {
	SetFog(fog Fog)
}

// StopFunc cancels the animation an adapter started. Calling it more than
// once is harmless.
type StopFunc func()

func stopper(ctrl *anim.Controller, id string) StopFunc {
	return func() {
		ctrl.Cancel(id)
	}
}
