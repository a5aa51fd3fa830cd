package routing

import (
	"fmt"
	"log/slog"
	"math"

	"trainfocus.app/internal/geo"
	"trainfocus.app/internal/logging"
	"trainfocus.app/internal/stations"
	"trainfocus.app/internal/water"
)

// Below this direct distance a route is a single hop; the router is not
// consulted at all.
const directRouteKm = 5.0

// DefaultStopSpacingKm is the minimum spacing between significant stops.
const DefaultStopSpacingKm = 15.0

// BuildPath converts an origin/destination pair into a distance/time
// annotated RoutePath, expanding it through intermediate stations via the
// greedy router for anything beyond a short hop.
func (p *Planner) BuildPath(from, to stations.Station, all []stations.Station) RoutePath {
	directDistance := geo.DistanceKm(from.Coordinates, to.Coordinates)

	if directDistance < directRouteKm {
		return singleSegmentPath(from, to, directDistance, false)
	}

	path := p.FindPath(from, to, all)
	if len(path) <= 2 {
		return singleSegmentPath(from, to, directDistance, directDistance > highSpeedThresholdKm)
	}

	stationIDs := make([]string, len(path))
	for i, s := range path {
		stationIDs[i] = s.ID
	}

	segments := make([]RouteSegment, 0, len(path)-1)
	var totalDistance float64
	totalTime := 0

	for i := 0; i < len(path)-1; i++ {
		d := geo.DistanceKm(path[i].Coordinates, path[i+1].Coordinates)
		highSpeed := d > highSpeedThresholdKm
		minutes := travelTimeMinutes(d, highSpeed)

		segments = append(segments, RouteSegment{
			FromStationID: path[i].ID,
			ToStationID:   path[i+1].ID,
			DistanceKm:    math.Round(d),
			TimeMinutes:   minutes,
		})

		totalDistance += d
		totalTime += minutes
	}

	return RoutePath{
		StationIDs:       stationIDs,
		Segments:         segments,
		TotalDistanceKm:  math.Round(totalDistance),
		TotalTimeMinutes: totalTime,
	}
}

func singleSegmentPath(from, to stations.Station, distance float64, highSpeed bool) RoutePath {
	minutes := travelTimeMinutes(distance, highSpeed)
	return RoutePath{
		StationIDs: []string{from.ID, to.ID},
		Segments: []RouteSegment{{
			FromStationID: from.ID,
			ToStationID:   to.ID,
			DistanceKm:    math.Round(distance),
			TimeMinutes:   minutes,
		}},
		TotalDistanceKm:  math.Round(distance),
		TotalTimeMinutes: minutes,
	}
}

// BuildCuratedRoutes expands each candidate into a full route and validates
// every consecutive station pair against the water barrier model. A route
// that would cross open water anywhere along its path is dropped silently;
// this thins the affected travel-time bucket rather than raising an error.
func (p *Planner) BuildCuratedRoutes(origin stations.Station, candidates []Candidate, all []stations.Station) []Route {
	byID := stations.ByID(all)

	var valid []Route
	for _, candidate := range candidates {
		path := p.BuildPath(origin, candidate.Station, all)

		coords := make([]geo.Coordinate, 0, len(path.StationIDs))
		for _, id := range path.StationIDs {
			if s, ok := byID[id]; ok {
				coords = append(coords, s.Coordinates)
			}
		}

		if water.PathCrossesWater(coords) {
			logging.LogOperation(p.logger, "curated_route_dropped_water",
				slog.String("from", origin.ID),
				slog.String("to", candidate.Station.ID))
			continue
		}

		intermediateStops := 0
		if len(path.StationIDs) > 2 {
			intermediateStops = len(path.StationIDs) - 2
		}

		valid = append(valid, Route{
			ID:                fmt.Sprintf("route-%s-%s", origin.ID, candidate.Station.ID),
			FromStationID:     origin.ID,
			ToStationID:       candidate.Station.ID,
			TravelTimeMinutes: path.TotalTimeMinutes,
			DistanceKm:        path.TotalDistanceKm,
			IntermediateStops: intermediateStops,
			Service:           ServiceForDistance(path.TotalDistanceKm),
			Path:              path,
		})
	}

	return valid
}

// SignificantStops walks the path in order and returns the sparse set of
// station IDs that qualify as real stops: the first and last station always,
// and any intermediate station at least minDistanceKm from the previously
// selected stop.
func SignificantStops(stationIDs []string, byID map[string]stations.Station, minDistanceKm float64) map[string]struct{} {
	stops := make(map[string]struct{})
	if len(stationIDs) == 0 {
		return stops
	}

	stops[stationIDs[0]] = struct{}{}
	stops[stationIDs[len(stationIDs)-1]] = struct{}{}
	if len(stationIDs) <= 2 {
		return stops
	}

	last, ok := byID[stationIDs[0]]
	if !ok {
		return stops
	}

	for _, id := range stationIDs[1 : len(stationIDs)-1] {
		s, ok := byID[id]
		if !ok {
			continue
		}
		if geo.DistanceKm(last.Coordinates, s.Coordinates) >= minDistanceKm {
			stops[id] = struct{}{}
			last = s
		}
	}

	return stops
}
