package routing

import (
	"log/slog"
	"math"

	"trainfocus.app/internal/geo"
	"trainfocus.app/internal/logging"
	"trainfocus.app/internal/stations"
)

// Router tuning. The wide bearing cone and the closest-candidate pick are a
// deliberate policy: prefer many short forward hops over few long ones so
// journeys pass as many stations as possible. This is not a shortest-path
// algorithm and must not be turned into one; stop density and journey
// duration depend on it.
const (
	maxRouterIterations = 2000
	directFinishKm      = 1.0
	bearingConeDegrees  = 130.0
)

// FindPath returns an ordered station path from origin to destination. The
// result always begins with from, always ends with to, and has length >= 2.
// Paths are cached by station-ID pair; a cached path is accepted only when
// it still resolves to at least 2 stations against the current station set.
func (p *Planner) FindPath(from, to stations.Station, all []stations.Station) []stations.Station {
	key := pathKey{fromID: from.ID, toID: to.ID}
	if cachedIDs, ok := p.pathCache.Get(key); ok {
		byID := stations.ByID(all)
		resolved := make([]stations.Station, 0, len(cachedIDs))
		for _, id := range cachedIDs {
			if s, ok := byID[id]; ok {
				resolved = append(resolved, s)
			}
		}
		if len(resolved) >= 2 {
			return resolved
		}
	}

	path := greedyHopPath(from, to, all, p.logger)

	ids := make([]string, len(path))
	for i, s := range path {
		ids[i] = s.ID
	}
	p.pathCache.Add(key, ids)

	return path
}

// greedyHopPath walks from origin toward destination, repeatedly picking the
// closest unvisited station that makes forward progress within the bearing
// cone. Bounded to guarantee termination.
func greedyHopPath(from, to stations.Station, all []stations.Station, logger *slog.Logger) []stations.Station {
	path := []stations.Station{from}
	visited := map[string]bool{from.ID: true}
	current := from

	for iterations := 0; current.ID != to.ID && iterations < maxRouterIterations; iterations++ {
		distanceToGoal := geo.DistanceKm(current.Coordinates, to.Coordinates)

		if distanceToGoal < directFinishKm {
			path = append(path, to)
			break
		}

		bearingToGoal := geo.Bearing(current.Coordinates, to.Coordinates)

		// First pass: closest unvisited station that is strictly closer to
		// the goal and within the bearing cone. Ties resolve to the first
		// closest found, in input order.
		var best *stations.Station
		bestDist := math.Inf(1)

		for i := range all {
			candidate := &all[i]
			if visited[candidate.ID] || candidate.ID == current.ID {
				continue
			}

			candidateToGoal := geo.DistanceKm(candidate.Coordinates, to.Coordinates)
			if candidateToGoal >= distanceToGoal {
				continue
			}

			bearing := geo.Bearing(current.Coordinates, candidate.Coordinates)
			if geo.BearingDifference(bearing, bearingToGoal) > bearingConeDegrees {
				continue
			}

			dist := geo.DistanceKm(current.Coordinates, candidate.Coordinates)
			if dist < bestDist {
				bestDist = dist
				best = candidate
			}
		}

		// Fallback: any forward-progress station, bearing ignored.
		if best == nil {
			for i := range all {
				candidate := &all[i]
				if visited[candidate.ID] || candidate.ID == current.ID {
					continue
				}

				candidateToGoal := geo.DistanceKm(candidate.Coordinates, to.Coordinates)
				if candidateToGoal >= distanceToGoal {
					continue
				}

				dist := geo.DistanceKm(current.Coordinates, candidate.Coordinates)
				if dist < bestDist {
					bestDist = dist
					best = candidate
				}
			}
		}

		if best == nil {
			// No intermediate station makes progress. Terminate with a
			// direct final hop; log it as a data-quality signal rather than
			// surfacing an error.
			logging.LogOperation(logger, "router_direct_final_hop",
				slog.String("from", current.ID),
				slog.String("to", to.ID),
				slog.Float64("remaining_km", distanceToGoal))
			path = append(path, to)
			break
		}

		path = append(path, *best)
		visited[best.ID] = true
		current = *best
	}

	if path[len(path)-1].ID != to.ID {
		path = append(path, to)
	}

	return path
}
