// Package geo provides the great-circle math used by the routing and
// simulation layers: haversine distances, initial bearings, and spherical
// interpolation along an arc. All functions are pure and operate on
// coordinates in degrees.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for all distance calculations.
const EarthRadiusKm = 6371.0

// Coordinate is a geographic point in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceKm returns the haversine great-circle distance in kilometers
// between two points.
func DistanceKm(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Bearing returns the initial compass bearing in degrees [0, 360) from a to b.
func Bearing(a, b Coordinate) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	deltaLon := (b.Lon - a.Lon) * math.Pi / 180

	y := math.Sin(deltaLon) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(deltaLon)

	theta := math.Atan2(y, x)
	return math.Mod(theta*180/math.Pi+360, 360)
}

// BearingDifference returns the smallest angular difference in degrees
// [0, 180] between two bearings.
func BearingDifference(b1, b2 float64) float64 {
	diff := math.Abs(b1 - b2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// Interpolate returns the point a fraction t in [0, 1] of the way from a to b
// along the great-circle arc. Returns a unchanged when the two points
// coincide, which keeps the math well-defined for zero-length segments.
func Interpolate(a, b Coordinate, t float64) Coordinate {
	lat1 := a.Lat * math.Pi / 180
	lon1 := a.Lon * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lon2 := b.Lon * math.Pi / 180

	d := 2 * math.Asin(math.Sqrt(
		math.Pow(math.Sin((lat2-lat1)/2), 2)+
			math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin((lon2-lon1)/2), 2)))

	if d == 0 {
		return a
	}

	fa := math.Sin((1-t)*d) / math.Sin(d)
	fb := math.Sin(t*d) / math.Sin(d)

	x := fa*math.Cos(lat1)*math.Cos(lon1) + fb*math.Cos(lat2)*math.Cos(lon2)
	y := fa*math.Cos(lat1)*math.Sin(lon1) + fb*math.Cos(lat2)*math.Sin(lon2)
	z := fa*math.Sin(lat1) + fb*math.Sin(lat2)

	return Coordinate{
		Lat: math.Atan2(z, math.Sqrt(x*x+y*y)) * 180 / math.Pi,
		Lon: math.Atan2(y, x) * 180 / math.Pi,
	}
}
