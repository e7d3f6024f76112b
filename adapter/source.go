package adapter

import (
	"math"
	"time"

	"github.com/matt-g-everett/glide/anim"
	"github.com/matt-g-everett/glide/easing"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Animation ids used by the source adapters.
const (
	PointAlongLineID = "point-along-line"
	LineDrawingID    = "line-drawing"
)

const (
	DefaultPointDuration = 5 * time.Second
	DefaultLineDuration  = 3 * time.Second
)

// PointOptions configure AnimatePointAlongLine. Easing defaults to linear.
type PointOptions struct {
	Duration time.Duration
	Easing   easing.Func
	// Loop restarts the run each time it completes.
	Loop       bool
	OnProgress func(progress float64, at orb.Point)
}

// AnimatePointAlongLine moves a point feature along path by replacing the
// data of the given source every frame.
func AnimatePointAlongLine(ctrl *anim.Controller, src Source, geom PathSampler, sourceID string,
	path orb.LineString, opts PointOptions) (StopFunc, error) {

	if geom == nil {
		tracer().Errorf("point animation needs a path sampler")
		return nil, ErrGeometryUnavailable
	}
	if len(path) < 2 {
		return nil, ErrShortPath
	}
	a := anim.Options{Duration: opts.Duration, Easing: opts.Easing}
	if a.Duration == 0 {
		a.Duration = DefaultPointDuration
	}

	length := geom.Length(path)
	a.OnUpdate = func(progress, _ float64) {
		at := geom.Along(path, progress*length)
		src.SetSourceData(sourceID, geojson.NewFeature(at))
		if opts.OnProgress != nil {
			opts.OnProgress(progress, at)
		}
	}
	var run func()
	if opts.Loop {
		a.OnComplete = func() { run() }
	}
	run = func() {
		ctrl.Start(PointAlongLineID, a)
	}
	run()
	return stopper(ctrl, PointAlongLineID), nil
}

// LineOptions configure AnimateLineDrawing. Easing defaults to linear.
type LineOptions struct {
	Duration   time.Duration
	Easing     easing.Func
	OnComplete func()
}

// AnimateLineDrawing reveals path one coordinate at a time. The source is
// only written once at least two coordinates are visible.
func AnimateLineDrawing(ctrl *anim.Controller, src Source, sourceID string,
	path orb.LineString, opts LineOptions) *anim.Handle {

	a := anim.Options{Duration: opts.Duration, Easing: opts.Easing, OnComplete: opts.OnComplete}
	if a.Duration == 0 {
		a.Duration = DefaultLineDuration
	}
	total := len(path)
	a.OnUpdate = func(progress, _ float64) {
		n := visibleCount(progress, total)
		if n < 2 {
			return
		}
		visible := append(orb.LineString(nil), path[:n]...)
		src.SetSourceData(sourceID, geojson.NewFeature(visible))
	}
	return ctrl.Start(LineDrawingID, a)
}

// visibleCount is ceil(progress·total), kept within [0,total] for easings
// that leave [0,1].
func visibleCount(progress float64, total int) int {
	n := int(math.Ceil(progress * float64(total)))
	if n < 0 {
		return 0
	}
	if n > total {
		return total
	}
	return n
}
