package routing

import (
	"strings"

	"trainfocus.app/internal/geo"
	"trainfocus.app/internal/stations"
)

// travelTimeBucket is one travel-time range with a desired pick count.
type travelTimeBucket struct {
	minMinutes int
	maxMinutes int
	count      int
}

// The fixed buckets spread curated destinations across session lengths
// instead of suggesting the N nearest stations. At most 11 stations total.
var travelTimeBuckets = []travelTimeBucket{
	{minMinutes: 5, maxMinutes: 15, count: 3},
	{minMinutes: 15, maxMinutes: 30, count: 3},
	{minMinutes: 30, maxMinutes: 60, count: 2},
	{minMinutes: 60, maxMinutes: 120, count: 2},
	{minMinutes: 120, maxMinutes: 180, count: 1},
}

// MaxCandidates is the largest number of stations SelectCandidates returns.
const MaxCandidates = 11

// SelectCandidates returns a curated spread of reachable destinations from
// the origin, bucketed by direct travel time. Within each bucket candidates
// are shuffled and picked up to the bucket's count; a station never appears
// in two buckets. Results are cached per (origin, region).
func (p *Planner) SelectCandidates(origin stations.Station, all []stations.Station, regionCode string) []Candidate {
	key := candidateKey{originID: origin.ID, regionCode: strings.ToLower(regionCode)}
	if cached, ok := p.candidateCache.Get(key); ok {
		return cached
	}

	var eligible []Candidate
	for _, s := range all {
		if s.ID == origin.ID {
			continue
		}
		distance := geo.DistanceKm(origin.Coordinates, s.Coordinates)
		minutes := travelTimeMinutes(distance, distance > highSpeedThresholdKm)
		if minutes < 5 || minutes > 180 {
			continue
		}
		eligible = append(eligible, Candidate{
			Station:           s,
			TravelTimeMinutes: minutes,
			DistanceKm:        distance,
		})
	}

	selected := make([]Candidate, 0, MaxCandidates)
	used := make(map[string]bool)

	for _, bucket := range travelTimeBuckets {
		var inBucket []Candidate
		for _, c := range eligible {
			if c.TravelTimeMinutes >= bucket.minMinutes &&
				c.TravelTimeMinutes < bucket.maxMinutes &&
				!used[c.Station.ID] {
				inBucket = append(inBucket, c)
			}
		}

		p.shuffle(len(inBucket), func(i, j int) {
			inBucket[i], inBucket[j] = inBucket[j], inBucket[i]
		})

		take := bucket.count
		if take > len(inBucket) {
			take = len(inBucket)
		}
		for _, picked := range inBucket[:take] {
			selected = append(selected, picked)
			used[picked.Station.ID] = true
		}
	}

	p.candidateCache.Add(key, selected)
	return selected
}
