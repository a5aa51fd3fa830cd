package journey

import (
	"errors"
	"log/slog"
	"sort"
	"sync"

	"trainfocus.app/internal/geo"
	"trainfocus.app/internal/logging"
	"trainfocus.app/internal/stations"
)

// Status is the simulator lifecycle state.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusBreak     Status = "break"
)

var (
	ErrJourneyActive = errors.New("a journey is already active")
	ErrNoJourney     = errors.New("no active journey")
	ErrNotRunning    = errors.New("journey is not running")
	ErrNotPaused     = errors.New("journey is not paused")
	ErrNotCompleted  = errors.New("journey is not completed")
)

// Stats accumulates totals across completed journeys.
type Stats struct {
	JourneysCompleted int      `json:"journeysCompleted"`
	TotalDistanceKm   float64  `json:"totalDistanceKm"`
	TotalTimeMinutes  int      `json:"totalTimeMinutes"`
	StationsVisited   int      `json:"stationsVisited"`
	CountriesVisited  []string `json:"countriesVisited"`
}

// Snapshot is a read-only view of the simulator state at one instant.
type Snapshot struct {
	JourneyID             string         `json:"journeyId"`
	Status                Status         `json:"status"`
	RegionCode            string         `json:"regionCode"`
	StationIDs            []string       `json:"stations"`
	Segments              []Segment      `json:"segments"`
	CurrentSegmentIndex   int            `json:"currentSegmentIndex"`
	SegmentProgress       float64        `json:"segmentProgress"`
	OverallProgress       float64        `json:"overallProgress"`
	Position              geo.Coordinate `json:"position"`
	ElapsedSeconds        int            `json:"elapsedSeconds"`
	TotalSeconds          int            `json:"totalSeconds"`
	TotalDistanceKm       float64        `json:"totalDistanceKm"`
	PauseState            *PauseState    `json:"pauseState,omitempty"`
	BreakRemainingSeconds int            `json:"breakRemainingSeconds,omitempty"`
}

// Simulator owns at most one journey and advances it one simulated second per
// Tick. All state transitions go through the mutex; Tick never blocks on I/O.
type Simulator struct {
	logger *slog.Logger

	mu             sync.RWMutex
	status         Status
	journey        *Journey
	byID           map[string]stations.Station
	segmentElapsed int
	travelElapsed  int
	breakRemaining int

	completed       int
	distanceKm      float64
	timeMinutes     int
	visitedStations map[string]struct{}
	countries       map[string]struct{}
}

// NewSimulator returns an idle simulator.
func NewSimulator(logger *slog.Logger) *Simulator {
	return &Simulator{
		logger:          logger,
		status:          StatusIdle,
		visitedStations: make(map[string]struct{}),
		countries:       make(map[string]struct{}),
	}
}

// Start installs a journey and begins ticking it. Fails if a journey is
// already active in any non-idle state.
func (s *Simulator) Start(j *Journey, byID map[string]stations.Station) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusIdle {
		return ErrJourneyActive
	}
	if j == nil || len(j.Segments) == 0 {
		return ErrNoJourney
	}

	s.journey = j
	s.byID = byID
	s.segmentElapsed = 0
	s.travelElapsed = 0
	s.breakRemaining = 0
	s.status = StatusRunning

	logging.LogOperation(s.logger, "journey_started",
		slog.String("journey_id", j.ID),
		slog.String("region", j.RegionCode),
		slog.Int("segments", len(j.Segments)),
		slog.Int("total_seconds", j.TotalTimeSeconds))
	return nil
}

// Pause freezes a running journey. Ticks become no-ops until Resume.
func (s *Simulator) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusRunning {
		return ErrNotRunning
	}
	s.status = StatusPaused
	return nil
}

// Resume continues a paused journey.
func (s *Simulator) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusPaused {
		return ErrNotPaused
	}
	s.status = StatusRunning
	return nil
}

// Abandon discards the active journey without recording stats and returns
// the simulator to idle. Abandoning with no journey is a no-op.
func (s *Simulator) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.journey != nil {
		logging.LogOperation(s.logger, "journey_abandoned",
			slog.String("journey_id", s.journey.ID))
	}
	s.resetLocked()
}

// StartBreak moves a completed journey into the rest countdown.
func (s *Simulator) StartBreak() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusCompleted {
		return ErrNotCompleted
	}
	s.status = StatusBreak
	s.breakRemaining = BreakSeconds
	return nil
}

// EndBreak cuts the rest countdown short and resets to idle.
func (s *Simulator) EndBreak() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusBreak {
		return ErrNoJourney
	}
	s.resetLocked()
	return nil
}

// Tick advances the simulation by one second. Idle, paused, and completed
// states ignore ticks entirely.
func (s *Simulator) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.status {
	case StatusRunning:
		s.tickRunningLocked()
	case StatusBreak:
		s.breakRemaining--
		if s.breakRemaining <= 0 {
			s.resetLocked()
		}
	}
}

func (s *Simulator) tickRunningLocked() {
	j := s.journey
	if j == nil {
		return
	}

	// A pause consumes whole ticks. The tick that drains it also clears it
	// and advances to the next segment.
	if j.PauseState != nil {
		j.PauseState.RemainingPauseSeconds--
		if j.PauseState.RemainingPauseSeconds <= 0 {
			j.PauseState = nil
			j.CurrentSegmentIndex++
			j.SegmentProgress = 0
			s.segmentElapsed = 0
		}
		return
	}

	s.travelElapsed++
	s.segmentElapsed++

	seg := j.Segments[j.CurrentSegmentIndex]
	progress := float64(s.segmentElapsed) / float64(seg.TimeSeconds)
	if progress > 1 {
		progress = 1
	}
	j.SegmentProgress = progress
	if progress < 1 {
		return
	}

	if j.CurrentSegmentIndex == len(j.Segments)-1 {
		s.completeLocked()
		return
	}

	// Segment done. Hold at the upcoming station if it is a significant
	// stop; the index stays on the finished segment for the pause duration.
	nextID := seg.ToStationID
	if _, significant := j.SignificantStopIDs[nextID]; significant {
		name := nextID
		if st, ok := s.byID[nextID]; ok {
			name = st.Name
		}
		j.PauseState = &PauseState{
			StationID:             nextID,
			StationName:           name,
			RemainingPauseSeconds: PauseSeconds,
			TotalPauseSeconds:     PauseSeconds,
		}
		return
	}

	j.CurrentSegmentIndex++
	j.SegmentProgress = 0
	s.segmentElapsed = 0
}

func (s *Simulator) completeLocked() {
	j := s.journey
	s.status = StatusCompleted

	s.completed++
	s.distanceKm += j.TotalDistanceKm
	s.timeMinutes += j.TotalTimeMinutes
	for _, id := range j.StationIDs {
		s.visitedStations[id] = struct{}{}
		if st, ok := s.byID[id]; ok && st.CountryCode != "" {
			s.countries[st.CountryCode] = struct{}{}
		}
	}

	logging.LogOperation(s.logger, "journey_completed",
		slog.String("journey_id", j.ID),
		slog.Float64("distance_km", j.TotalDistanceKm),
		slog.Int("time_minutes", j.TotalTimeMinutes))
}

func (s *Simulator) resetLocked() {
	s.status = StatusIdle
	s.journey = nil
	s.byID = nil
	s.segmentElapsed = 0
	s.travelElapsed = 0
	s.breakRemaining = 0
}

// Status returns the current lifecycle state.
func (s *Simulator) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Snapshot returns a copy of the current state. The second return is false
// when no journey is active.
func (s *Simulator) Snapshot() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j := s.journey
	if j == nil {
		return Snapshot{Status: s.status}, false
	}

	seg := j.Segments[j.CurrentSegmentIndex]
	overall := seg.StartProgress + (seg.EndProgress-seg.StartProgress)*j.SegmentProgress
	if s.status == StatusCompleted || s.status == StatusBreak {
		overall = 1
	}

	snap := Snapshot{
		JourneyID:             j.ID,
		Status:                s.status,
		RegionCode:            j.RegionCode,
		StationIDs:            append([]string(nil), j.StationIDs...),
		Segments:              append([]Segment(nil), j.Segments...),
		CurrentSegmentIndex:   j.CurrentSegmentIndex,
		SegmentProgress:       j.SegmentProgress,
		OverallProgress:       overall,
		Position:              s.positionLocked(seg, j.SegmentProgress),
		ElapsedSeconds:        s.travelElapsed,
		TotalSeconds:          j.TotalTimeSeconds,
		TotalDistanceKm:       j.TotalDistanceKm,
		BreakRemainingSeconds: s.breakRemaining,
	}
	if j.PauseState != nil {
		pause := *j.PauseState
		snap.PauseState = &pause
	}
	return snap, true
}

func (s *Simulator) positionLocked(seg Segment, progress float64) geo.Coordinate {
	from, okFrom := s.byID[seg.FromStationID]
	to, okTo := s.byID[seg.ToStationID]
	switch {
	case okFrom && okTo:
		return geo.Interpolate(from.Coordinates, to.Coordinates, progress)
	case okFrom:
		return from.Coordinates
	case okTo:
		return to.Coordinates
	default:
		return geo.Coordinate{}
	}
}

// Stats returns accumulated totals across all completed journeys.
func (s *Simulator) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	countries := make([]string, 0, len(s.countries))
	for c := range s.countries {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	return Stats{
		JourneysCompleted: s.completed,
		TotalDistanceKm:   s.distanceKm,
		TotalTimeMinutes:  s.timeMinutes,
		StationsVisited:   len(s.visitedStations),
		CountriesVisited:  countries,
	}
}
