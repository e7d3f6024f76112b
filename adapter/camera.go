package adapter

import (
	"math"
	"time"

	"github.com/matt-g-everett/glide/anim"
	"github.com/matt-g-everett/glide/easing"
	"github.com/paulmach/orb"
)

// Animation ids used by the camera adapters.
const (
	OrbitID      = "orbit"
	FollowPathID = "followPath"
)

// Orbit defaults.
const (
	DefaultOrbitRadius   = 0.01 // degrees
	DefaultOrbitAltitude = 1500 // metres
	DefaultOrbitDuration = 30 * time.Second
)

// Path following defaults.
const (
	DefaultFollowDuration = 10 * time.Second
	DefaultFollowAltitude = 500 // metres
	DefaultFollowPitch    = 75  // degrees

	// The camera heads towards the point this far ahead.
	followLookAheadKm = 0.05
)

// OrbitOptions configure OrbitCamera. Zero fields take the defaults.
type OrbitOptions struct {
	Radius   float64
	Altitude float64
	Duration time.Duration
	// Direction is 1 for clockwise, -1 for counter-clockwise.
	Direction float64
	// OnStop is called when a full orbit has been completed.
	OnStop func()
}

// OrbitCamera circles the camera once around center, looking at it.
func OrbitCamera(ctrl *anim.Controller, cam Camera, center orb.Point, opts OrbitOptions) StopFunc {
	radius := opts.Radius
	if radius == 0 {
		radius = DefaultOrbitRadius
	}
	altitude := opts.Altitude
	if altitude == 0 {
		altitude = DefaultOrbitAltitude
	}
	duration := opts.Duration
	if duration == 0 {
		duration = DefaultOrbitDuration
	}
	direction := 1.0
	if opts.Direction < 0 {
		direction = -1
	}

	startBearing := cam.Bearing()
	lookAt := center
	ctrl.Start(OrbitID, anim.Options{
		Duration: duration,
		Easing:   easing.Linear,
		OnUpdate: func(progress, _ float64) {
			angle := (startBearing + direction*progress*360) * math.Pi / 180
			cam.SetCamera(CameraPose{
				Position: orb.Point{
					center.Lon() + radius*math.Cos(angle),
					center.Lat() + radius*math.Sin(angle),
				},
				Altitude: altitude,
				LookAt:   &lookAt,
			})
		},
		OnComplete: opts.OnStop,
	})
	return stopper(ctrl, OrbitID)
}

// FollowOptions configure FollowPath. Zero fields take the defaults.
type FollowOptions struct {
	Duration time.Duration
	Altitude float64
	Pitch    float64
	// Easing defaults to easing.EaseInOutCubic.
	Easing easing.Func
	// OnProgress receives the eased progress and the camera position.
	OnProgress func(progress float64, at orb.Point)
	OnComplete func()
}

// FollowPath flies the camera along path, heading along the route.
func FollowPath(ctrl *anim.Controller, cam Camera, geom PathSampler, path orb.LineString, opts FollowOptions) (StopFunc, error) {
	if geom == nil {
		tracer().Errorf("path following needs a path sampler")
		return nil, ErrGeometryUnavailable
	}
	if len(path) < 2 {
		return nil, ErrShortPath
	}
	duration := opts.Duration
	if duration == 0 {
		duration = DefaultFollowDuration
	}
	altitude := opts.Altitude
	if altitude == 0 {
		altitude = DefaultFollowAltitude
	}
	pitch := opts.Pitch
	if pitch == 0 {
		pitch = DefaultFollowPitch
	}
	ease := opts.Easing
	if ease == nil {
		ease = easing.EaseInOutCubic
	}

	length := geom.Length(path)
	ctrl.Start(FollowPathID, anim.Options{
		Duration: duration,
		Easing:   ease,
		OnUpdate: func(progress, _ float64) {
			distance := progress * length
			at := geom.Along(path, distance)
			ahead := geom.Along(path, math.Min(distance+followLookAheadKm, length))
			cam.SetCamera(CameraPose{
				Position: at,
				Altitude: altitude,
				Pitch:    pitch,
				Bearing:  geom.Bearing(at, ahead),
			})
			if opts.OnProgress != nil {
				opts.OnProgress(progress, at)
			}
		},
		OnComplete: opts.OnComplete,
	})
	return stopper(ctrl, FollowPathID), nil
}
