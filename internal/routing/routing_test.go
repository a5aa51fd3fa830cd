package routing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainfocus.app/internal/geo"
	"trainfocus.app/internal/stations"
)

func newTestPlanner(seed int64) *Planner {
	return NewPlanner(nil, rand.New(rand.NewSource(seed)))
}

// lineStations lays n stations west to east along latitude 50, roughly 28 km
// apart. A dense inland corridor with no water anywhere near it.
func lineStations(n int) []stations.Station {
	out := make([]stations.Station, n)
	for i := 0; i < n; i++ {
		out[i] = stations.Station{
			ID:          fmt.Sprintf("api-fr-%d", i),
			Name:        fmt.Sprintf("Station %d", i),
			CountryCode: "fr",
			Coordinates: geo.Coordinate{Lat: 50, Lon: 0.4 * float64(i)},
		}
	}
	return out
}

func TestTravelTimeMinutes(t *testing.T) {
	tests := []struct {
		name      string
		km        float64
		highSpeed bool
		want      int
	}{
		{"regional 80 km", 80, false, 60},
		{"regional rounds", 100, false, 75},
		{"high speed 200 km", 200, true, 60},
		{"high speed 150 km", 150, true, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, travelTimeMinutes(tt.km, tt.highSpeed))
		})
	}
}

func TestServiceForDistance(t *testing.T) {
	tests := []struct {
		km   float64
		want ServiceType
	}{
		{400, ServiceHighSpeed},
		{151, ServiceHighSpeed},
		{150, ServiceIntercity},
		{100, ServiceIntercity},
		{81, ServiceIntercity},
		{80, ServiceRegional},
		{31, ServiceRegional},
		{30, ServiceLocal},
		{5, ServiceLocal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ServiceForDistance(tt.km).Type, "%.0f km", tt.km)
	}
}

func TestFindPathEndpoints(t *testing.T) {
	p := newTestPlanner(1)
	all := lineStations(12)

	path := p.FindPath(all[0], all[11], all)

	require.GreaterOrEqual(t, len(path), 2)
	assert.Equal(t, all[0].ID, path[0].ID)
	assert.Equal(t, all[11].ID, path[len(path)-1].ID)

	// A dense corridor should be threaded through intermediates, not jumped
	// in one hop.
	assert.Greater(t, len(path), 2)

	seen := map[string]bool{}
	for _, s := range path {
		assert.False(t, seen[s.ID], "station %s repeated", s.ID)
		seen[s.ID] = true
	}
}

func TestFindPathCacheSurvivesStationSetChange(t *testing.T) {
	p := newTestPlanner(1)
	all := lineStations(12)

	first := p.FindPath(all[0], all[11], all)
	require.Greater(t, len(first), 2)

	// Same endpoints, but the cached intermediates are gone from the set.
	// The cached path is re-resolved against the current stations and still
	// yields a valid endpoint-to-endpoint path.
	reduced := []stations.Station{all[0], all[11]}
	second := p.FindPath(all[0], all[11], reduced)
	require.GreaterOrEqual(t, len(second), 2)
	assert.Equal(t, all[0].ID, second[0].ID)
	assert.Equal(t, all[11].ID, second[len(second)-1].ID)
}

func TestFindPathNoForwardStations(t *testing.T) {
	p := newTestPlanner(1)
	from := stations.Station{ID: "a", Coordinates: geo.Coordinate{Lat: 48.0, Lon: 2.0}}
	to := stations.Station{ID: "b", Coordinates: geo.Coordinate{Lat: 52.0, Lon: 13.0}}
	// A decoy behind the origin never makes forward progress.
	decoy := stations.Station{ID: "c", Coordinates: geo.Coordinate{Lat: 46.0, Lon: -2.0}}

	path := p.FindPath(from, to, []stations.Station{from, to, decoy})

	require.Len(t, path, 2)
	assert.Equal(t, "a", path[0].ID)
	assert.Equal(t, "b", path[1].ID)
}

func TestBuildPathShortHopIsDirect(t *testing.T) {
	p := newTestPlanner(1)
	from := stations.Station{ID: "a", Coordinates: geo.Coordinate{Lat: 50, Lon: 0}}
	to := stations.Station{ID: "b", Coordinates: geo.Coordinate{Lat: 50.03, Lon: 0}}
	other := stations.Station{ID: "c", Coordinates: geo.Coordinate{Lat: 50.015, Lon: 0}}

	path := p.BuildPath(from, to, []stations.Station{from, to, other})

	require.Len(t, path.Segments, 1)
	assert.Equal(t, []string{"a", "b"}, path.StationIDs)
	assert.InDelta(t, 3, path.TotalDistanceKm, 1)
}

func TestBuildPathSegmentsAreContiguous(t *testing.T) {
	p := newTestPlanner(1)
	all := lineStations(12)

	path := p.BuildPath(all[0], all[11], all)

	require.Greater(t, len(path.Segments), 1)
	require.Equal(t, len(path.StationIDs)-1, len(path.Segments))

	for i, seg := range path.Segments {
		assert.Equal(t, path.StationIDs[i], seg.FromStationID)
		assert.Equal(t, path.StationIDs[i+1], seg.ToStationID)
		assert.Positive(t, seg.TimeMinutes)
	}

	totalTime := 0
	for _, seg := range path.Segments {
		totalTime += seg.TimeMinutes
	}
	assert.Equal(t, totalTime, path.TotalTimeMinutes)
}

func TestSelectCandidates(t *testing.T) {
	p := newTestPlanner(42)
	all := lineStations(60)
	origin := all[0]

	selected := p.SelectCandidates(origin, all, "fr")

	assert.LessOrEqual(t, len(selected), MaxCandidates)
	assert.NotEmpty(t, selected)

	seen := map[string]bool{}
	for _, c := range selected {
		assert.NotEqual(t, origin.ID, c.Station.ID)
		assert.False(t, seen[c.Station.ID], "duplicate candidate %s", c.Station.ID)
		seen[c.Station.ID] = true
		assert.GreaterOrEqual(t, c.TravelTimeMinutes, 5)
		assert.LessOrEqual(t, c.TravelTimeMinutes, 180)
	}
}

func TestSelectCandidatesDeterministicPerSeed(t *testing.T) {
	all := lineStations(60)

	a := newTestPlanner(7).SelectCandidates(all[0], all, "fr")
	b := newTestPlanner(7).SelectCandidates(all[0], all, "fr")

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Station.ID, b[i].Station.ID)
	}
}

func TestSelectCandidatesCached(t *testing.T) {
	p := newTestPlanner(7)
	all := lineStations(60)

	first := p.SelectCandidates(all[0], all, "fr")
	second := p.SelectCandidates(all[0], all, "FR")

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Station.ID, second[i].Station.ID)
	}
}

func TestBuildCuratedRoutesDropsWaterCrossings(t *testing.T) {
	p := newTestPlanner(1)

	paris := stations.Station{ID: "api-fr-paris", Name: "Paris Gare de Lyon", CountryCode: "fr", Coordinates: geo.Coordinate{Lat: 48.844, Lon: 2.374}}
	berlin := stations.Station{ID: "api-de-berlin", Name: "Berlin Hbf", CountryCode: "de", Coordinates: geo.Coordinate{Lat: 52.525, Lon: 13.369}}
	newYork := stations.Station{ID: "api-us-ny", Name: "New York Penn Station", CountryCode: "us", Coordinates: geo.Coordinate{Lat: 40.750, Lon: -73.993}}
	all := []stations.Station{paris, berlin, newYork}

	candidates := []Candidate{
		{Station: berlin, TravelTimeMinutes: 160, DistanceKm: 878},
		{Station: newYork, TravelTimeMinutes: 175, DistanceKm: 5837},
	}

	routes := p.BuildCuratedRoutes(paris, candidates, all)

	require.Len(t, routes, 1)
	assert.Equal(t, berlin.ID, routes[0].ToStationID)
	assert.Equal(t, "route-api-fr-paris-api-de-berlin", routes[0].ID)
	assert.Equal(t, ServiceHighSpeed, routes[0].Service.Type)
}

func TestSignificantStops(t *testing.T) {
	all := lineStations(12)
	byID := stations.ByID(all)
	ids := make([]string, len(all))
	for i, s := range all {
		ids[i] = s.ID
	}

	stops := SignificantStops(ids, byID, 50)

	assert.Contains(t, stops, ids[0])
	assert.Contains(t, stops, ids[len(ids)-1])

	// Spacing: stations sit ~28 km apart, so with a 50 km minimum roughly
	// every second intermediate qualifies, never two adjacent ones.
	prevIncluded := true
	for _, id := range ids[1 : len(ids)-1] {
		_, included := stops[id]
		if included {
			assert.False(t, prevIncluded, "adjacent stops %s included", id)
		}
		prevIncluded = included
	}
}

func TestSignificantStopsTinyPaths(t *testing.T) {
	all := lineStations(2)
	byID := stations.ByID(all)

	stops := SignificantStops([]string{all[0].ID, all[1].ID}, byID, 15)
	assert.Len(t, stops, 2)

	assert.Empty(t, SignificantStops(nil, byID, 15))
}
