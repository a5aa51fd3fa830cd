package journey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainfocus.app/internal/geo"
	"trainfocus.app/internal/stations"
)

func testStations() map[string]stations.Station {
	return map[string]stations.Station{
		"api-de-1": {ID: "api-de-1", Name: "Berlin Hbf", CountryCode: "de", Coordinates: geo.Coordinate{Lat: 52.525, Lon: 13.369}},
		"api-de-2": {ID: "api-de-2", Name: "Wittenberg Hbf", CountryCode: "de", Coordinates: geo.Coordinate{Lat: 51.876, Lon: 12.663}},
		"api-de-3": {ID: "api-de-3", Name: "Leipzig Hbf", CountryCode: "de", Coordinates: geo.Coordinate{Lat: 51.345, Lon: 12.381}},
	}
}

// twoSegmentJourney is a 400s + 200s trip whose middle station is a
// significant stop.
func twoSegmentJourney() *Journey {
	return &Journey{
		ID:         "journey-test",
		RegionCode: "de",
		StationIDs: []string{"api-de-1", "api-de-2", "api-de-3"},
		SignificantStopIDs: map[string]struct{}{
			"api-de-1": {},
			"api-de-2": {},
			"api-de-3": {},
		},
		Segments: []Segment{
			{FromStationID: "api-de-1", ToStationID: "api-de-2", DistanceKm: 85, TimeSeconds: 400, StartProgress: 0, EndProgress: 400.0 / 600.0},
			{FromStationID: "api-de-2", ToStationID: "api-de-3", DistanceKm: 62, TimeSeconds: 200, StartProgress: 400.0 / 600.0, EndProgress: 1},
		},
		TotalDistanceKm:  147,
		TotalTimeMinutes: 10,
		TotalTimeSeconds: 600,
	}
}

func tick(s *Simulator, n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

func TestSimulatorLifecycle(t *testing.T) {
	sim := NewSimulator(nil)
	assert.Equal(t, StatusIdle, sim.Status())

	_, ok := sim.Snapshot()
	assert.False(t, ok)

	require.NoError(t, sim.Start(twoSegmentJourney(), testStations()))
	assert.Equal(t, StatusRunning, sim.Status())

	assert.ErrorIs(t, sim.Start(twoSegmentJourney(), testStations()), ErrJourneyActive)

	require.NoError(t, sim.Pause())
	assert.Equal(t, StatusPaused, sim.Status())
	assert.ErrorIs(t, sim.Pause(), ErrNotRunning)

	require.NoError(t, sim.Resume())
	assert.Equal(t, StatusRunning, sim.Status())
	assert.ErrorIs(t, sim.Resume(), ErrNotPaused)

	sim.Abandon()
	assert.Equal(t, StatusIdle, sim.Status())
	_, ok = sim.Snapshot()
	assert.False(t, ok)
}

func TestSimulatorStartRejectsEmptyJourney(t *testing.T) {
	sim := NewSimulator(nil)
	assert.ErrorIs(t, sim.Start(nil, nil), ErrNoJourney)
	assert.ErrorIs(t, sim.Start(&Journey{}, nil), ErrNoJourney)
}

func TestSimulatorPausedTicksAreNoOps(t *testing.T) {
	sim := NewSimulator(nil)
	require.NoError(t, sim.Start(twoSegmentJourney(), testStations()))

	tick(sim, 100)
	require.NoError(t, sim.Pause())
	tick(sim, 50)

	snap, ok := sim.Snapshot()
	require.True(t, ok)
	assert.Equal(t, 100, snap.ElapsedSeconds)
	assert.InDelta(t, 0.25, snap.SegmentProgress, 1e-9)

	require.NoError(t, sim.Resume())
	tick(sim, 1)
	snap, _ = sim.Snapshot()
	assert.Equal(t, 101, snap.ElapsedSeconds)
}

func TestSimulatorPauseAtSignificantStop(t *testing.T) {
	sim := NewSimulator(nil)
	require.NoError(t, sim.Start(twoSegmentJourney(), testStations()))

	// Tick 399: almost done with the first segment, no pause yet.
	tick(sim, 399)
	snap, _ := sim.Snapshot()
	assert.Equal(t, 0, snap.CurrentSegmentIndex)
	assert.Nil(t, snap.PauseState)

	// Tick 400 finishes the segment and creates the hold; the index does
	// not advance yet.
	tick(sim, 1)
	snap, _ = sim.Snapshot()
	assert.Equal(t, 0, snap.CurrentSegmentIndex)
	require.NotNil(t, snap.PauseState)
	assert.Equal(t, "api-de-2", snap.PauseState.StationID)
	assert.Equal(t, "Wittenberg Hbf", snap.PauseState.StationName)
	assert.Equal(t, PauseSeconds, snap.PauseState.RemainingPauseSeconds)
	assert.Equal(t, PauseSeconds, snap.PauseState.TotalPauseSeconds)

	// Ticks 401-404 only drain the countdown.
	tick(sim, 4)
	snap, _ = sim.Snapshot()
	require.NotNil(t, snap.PauseState)
	assert.Equal(t, 1, snap.PauseState.RemainingPauseSeconds)
	assert.Equal(t, 0, snap.CurrentSegmentIndex)
	assert.Equal(t, 400, snap.ElapsedSeconds)

	// Tick 405 clears the hold and advances in the same tick.
	tick(sim, 1)
	snap, _ = sim.Snapshot()
	assert.Nil(t, snap.PauseState)
	assert.Equal(t, 1, snap.CurrentSegmentIndex)
	assert.Zero(t, snap.SegmentProgress)
	assert.Equal(t, 400, snap.ElapsedSeconds)
}

func TestSimulatorCompletion(t *testing.T) {
	sim := NewSimulator(nil)
	require.NoError(t, sim.Start(twoSegmentJourney(), testStations()))

	// 400s travel + 5s hold + 200s travel.
	tick(sim, 605)
	assert.Equal(t, StatusCompleted, sim.Status())

	snap, ok := sim.Snapshot()
	require.True(t, ok)
	assert.Equal(t, 1, snap.CurrentSegmentIndex)
	assert.InDelta(t, 1.0, snap.SegmentProgress, 1e-9)
	assert.InDelta(t, 1.0, snap.OverallProgress, 1e-9)
	assert.Equal(t, 600, snap.ElapsedSeconds)

	// Completed state ignores further ticks.
	tick(sim, 10)
	assert.Equal(t, StatusCompleted, sim.Status())

	stats := sim.Stats()
	assert.Equal(t, 1, stats.JourneysCompleted)
	assert.InDelta(t, 147.0, stats.TotalDistanceKm, 1e-9)
	assert.Equal(t, 10, stats.TotalTimeMinutes)
	assert.Equal(t, 3, stats.StationsVisited)
	assert.Equal(t, []string{"de"}, stats.CountriesVisited)
}

func TestSimulatorBreakCountdown(t *testing.T) {
	sim := NewSimulator(nil)
	require.NoError(t, sim.Start(twoSegmentJourney(), testStations()))
	tick(sim, 605)

	assert.ErrorIs(t, sim.EndBreak(), ErrNoJourney)
	require.NoError(t, sim.StartBreak())
	assert.Equal(t, StatusBreak, sim.Status())
	assert.ErrorIs(t, sim.StartBreak(), ErrNotCompleted)

	tick(sim, BreakSeconds-1)
	snap, ok := sim.Snapshot()
	require.True(t, ok)
	assert.Equal(t, 1, snap.BreakRemainingSeconds)

	tick(sim, 1)
	assert.Equal(t, StatusIdle, sim.Status())
	_, ok = sim.Snapshot()
	assert.False(t, ok)

	// Stats survive the reset.
	assert.Equal(t, 1, sim.Stats().JourneysCompleted)
}

func TestSimulatorEndBreakEarly(t *testing.T) {
	sim := NewSimulator(nil)
	require.NoError(t, sim.Start(twoSegmentJourney(), testStations()))
	tick(sim, 605)
	require.NoError(t, sim.StartBreak())
	tick(sim, 30)

	require.NoError(t, sim.EndBreak())
	assert.Equal(t, StatusIdle, sim.Status())
}

func TestSimulatorOverallProgressMonotonic(t *testing.T) {
	sim := NewSimulator(nil)
	require.NoError(t, sim.Start(twoSegmentJourney(), testStations()))

	prev := -1.0
	for i := 0; i < 605; i++ {
		sim.Tick()
		snap, ok := sim.Snapshot()
		require.True(t, ok)
		require.GreaterOrEqual(t, snap.OverallProgress, prev, "tick %d", i+1)
		require.LessOrEqual(t, snap.OverallProgress, 1.0)
		prev = snap.OverallProgress
	}
}

func TestSimulatorSkipsInsignificantStops(t *testing.T) {
	j := twoSegmentJourney()
	// Only the endpoints are significant; the middle station is passed
	// through without a hold.
	j.SignificantStopIDs = map[string]struct{}{
		"api-de-1": {},
		"api-de-3": {},
	}

	sim := NewSimulator(nil)
	require.NoError(t, sim.Start(j, testStations()))

	tick(sim, 400)
	snap, _ := sim.Snapshot()
	assert.Nil(t, snap.PauseState)
	assert.Equal(t, 1, snap.CurrentSegmentIndex)

	tick(sim, 200)
	assert.Equal(t, StatusCompleted, sim.Status())
}

func TestSimulatorPositionInterpolates(t *testing.T) {
	sim := NewSimulator(nil)
	byID := testStations()
	require.NoError(t, sim.Start(twoSegmentJourney(), byID))

	tick(sim, 200)
	snap, ok := sim.Snapshot()
	require.True(t, ok)

	from := byID["api-de-1"].Coordinates
	to := byID["api-de-2"].Coordinates
	total := geo.DistanceKm(from, to)
	fromStart := geo.DistanceKm(from, snap.Position)
	assert.InDelta(t, 0.5, fromStart/total, 0.01)
}

func TestDriverTicksAndStops(t *testing.T) {
	sim := NewSimulator(nil)
	require.NoError(t, sim.Start(twoSegmentJourney(), testStations()))

	driver := NewDriver(sim, time.Millisecond)
	driver.Start()

	assert.Eventually(t, func() bool {
		snap, ok := sim.Snapshot()
		return ok && snap.ElapsedSeconds > 0
	}, time.Second, time.Millisecond)

	driver.Stop()
	driver.Stop() // idempotent

	snap, _ := sim.Snapshot()
	elapsed := snap.ElapsedSeconds
	time.Sleep(20 * time.Millisecond)
	snap, _ = sim.Snapshot()
	assert.Equal(t, elapsed, snap.ElapsedSeconds)
}
