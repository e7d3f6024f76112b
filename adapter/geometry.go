package adapter

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// PathSampler measures and samples geographic paths. Distances are in
// kilometres, bearings in degrees clockwise from north.
type PathSampler interface {
	Length(path orb.LineString) float64
	Along(path orb.LineString, km float64) orb.Point
	Bearing(from, to orb.Point) float64
}

// Geodesic samples paths on a spherical earth with haversine distances.
type Geodesic struct{}

var _ PathSampler = Geodesic{}

func (Geodesic) Length(path orb.LineString) float64 {
	return geo.LengthHaversine(path) / 1000
}

// Along returns the point km kilometres along path. Distances beyond the
// end yield the last point, negative ones the first.
func (Geodesic) Along(path orb.LineString, km float64) orb.Point {
	if len(path) == 0 {
		return orb.Point{}
	}
	target := km * 1000
	if target <= 0 {
		return path[0]
	}
	travelled := 0.0
	for i := 0; i < len(path)-1; i++ {
		if travelled >= target {
			return backtrack(path, i, travelled-target)
		}
		travelled += geo.DistanceHaversine(path[i], path[i+1])
	}
	if travelled > target {
		return backtrack(path, len(path)-1, travelled-target)
	}
	return path[len(path)-1]
}

// backtrack walks metres back from path[i] towards path[i-1].
func backtrack(path orb.LineString, i int, metres float64) orb.Point {
	if metres == 0 {
		return path[i]
	}
	return geo.PointAtBearingAndDistance(path[i], geo.Bearing(path[i], path[i-1]), metres)
}

func (Geodesic) Bearing(from, to orb.Point) float64 {
	return geo.Bearing(from, to)
}
