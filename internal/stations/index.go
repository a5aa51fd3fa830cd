package stations

import (
	"math"
	"sort"

	"github.com/tidwall/rtree"

	"trainfocus.app/internal/geo"
)

// Index is a spatial index over a region's stations, used to answer
// nearby-station queries without scanning the whole set.
type Index struct {
	tree rtree.RTreeG[Station]
}

// NewIndex builds an index over the given stations.
func NewIndex(all []Station) *Index {
	ix := &Index{}
	for _, s := range all {
		point := [2]float64{s.Coordinates.Lon, s.Coordinates.Lat}
		ix.tree.Insert(point, point, s)
	}
	return ix
}

// Within returns every indexed station within radiusKm of the center,
// sorted by distance, excluding the station with excludeID.
func (ix *Index) Within(center geo.Coordinate, radiusKm float64, excludeID string) []Station {
	latDelta := radiusKm / 111.0
	cosLat := math.Cos(center.Lat * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	lonDelta := radiusKm / (111.0 * cosLat)

	min := [2]float64{center.Lon - lonDelta, center.Lat - latDelta}
	max := [2]float64{center.Lon + lonDelta, center.Lat + latDelta}

	type withDistance struct {
		station Station
		dist    float64
	}

	var candidates []withDistance
	ix.tree.Search(min, max, func(_, _ [2]float64, s Station) bool {
		if s.ID == excludeID {
			return true
		}
		d := geo.DistanceKm(center, s.Coordinates)
		if d <= radiusKm {
			candidates = append(candidates, withDistance{station: s, dist: d})
		}
		return true
	})

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	result := make([]Station, len(candidates))
	for i, c := range candidates {
		result[i] = c.station
	}
	return result
}
