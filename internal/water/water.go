// Package water decides whether a straight segment between two coordinates
// would require crossing a major body of open water. Exact coastline geometry
// is unavailable, so the model keeps a short list of conservative circular
// regions covering only deep mid-ocean and mid-sea areas, and blocks a
// segment only when a sustained run of sampled points falls inside them.
// Coastal hops and anything bridgeable stay routable.
package water

import (
	"math"

	"trainfocus.app/internal/geo"
)

// Region is a named circle of open water treated as impassable by rail.
type Region struct {
	Name     string
	Center   geo.Coordinate
	RadiusKm float64
}

// Segments shorter than this are always allowed: bridges, tunnels and train
// ferries exist at these scales.
const minCrossingKm = 50.0

var openWaterRegions = []Region{
	{Name: "Central Atlantic", Center: geo.Coordinate{Lat: 35, Lon: -45}, RadiusKm: 800},
	{Name: "North Atlantic", Center: geo.Coordinate{Lat: 45, Lon: -30}, RadiusKm: 500},
	{Name: "Central Pacific", Center: geo.Coordinate{Lat: 20, Lon: -150}, RadiusKm: 1000},
	{Name: "Western Pacific", Center: geo.Coordinate{Lat: 0, Lon: 180}, RadiusKm: 800},
	{Name: "Central Indian Ocean", Center: geo.Coordinate{Lat: -10, Lon: 75}, RadiusKm: 600},
	{Name: "Central Mediterranean", Center: geo.Coordinate{Lat: 36, Lon: 18}, RadiusKm: 150},
	{Name: "Western Mediterranean Deep", Center: geo.Coordinate{Lat: 35, Lon: 5}, RadiusKm: 100},
	{Name: "Central Baltic", Center: geo.Coordinate{Lat: 58, Lon: 20}, RadiusKm: 80},
	{Name: "Central North Sea", Center: geo.Coordinate{Lat: 56, Lon: 3}, RadiusKm: 100},
}

// Regions returns the fixed open-water region list.
func Regions() []Region {
	return openWaterRegions
}

// IsOpenWater reports whether the point lies inside any open-water region.
func IsOpenWater(p geo.Coordinate) bool {
	lon := p.Lon
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	normalized := geo.Coordinate{Lat: p.Lat, Lon: lon}

	for _, region := range openWaterRegions {
		if geo.DistanceKm(normalized, region.Center) < region.RadiusKm {
			return true
		}
	}
	return false
}

// CrossesWater reports whether the straight segment from a to b would cross
// a significant stretch of open water. It samples points along the segment
// and blocks only when the longest run of consecutive open-water samples is
// at least max(3, 30% of the sample count).
func CrossesWater(a, b geo.Coordinate) bool {
	distance := geo.DistanceKm(a, b)
	if distance < minCrossingKm {
		return false
	}

	sampleCount := int(math.Min(math.Ceil(distance/20), 30))

	consecutive := 0
	maxConsecutive := 0
	for i := 1; i < sampleCount; i++ {
		t := float64(i) / float64(sampleCount)
		point := geo.Coordinate{
			Lat: a.Lat + (b.Lat-a.Lat)*t,
			Lon: a.Lon + (b.Lon-a.Lon)*t,
		}

		if IsOpenWater(point) {
			consecutive++
			if consecutive > maxConsecutive {
				maxConsecutive = consecutive
			}
		} else {
			consecutive = 0
		}
	}

	threshold := int(math.Max(3, math.Floor(float64(sampleCount)*0.3)))
	return maxConsecutive >= threshold
}

// PathCrossesWater reports whether any consecutive pair of points in the
// path crosses open water.
func PathCrossesWater(points []geo.Coordinate) bool {
	for i := 0; i < len(points)-1; i++ {
		if CrossesWater(points[i], points[i+1]) {
			return true
		}
	}
	return false
}
