// Package journey drives the tick-based progress simulation of a trip along
// a routed path. The simulator owns exactly one active journey, advances it
// one second per tick, and holds for a fixed pause at significant stops.
package journey

import (
	"math"

	"github.com/google/uuid"

	"trainfocus.app/internal/routing"
	"trainfocus.app/internal/stations"
)

// PauseSeconds is how long the train holds at a significant stop.
const PauseSeconds = 5

// BreakSeconds is the rest countdown entered after a completed journey.
const BreakSeconds = 300

// Class selects the speed multiplier for a journey.
type Class string

const (
	ClassEconomy  Class = "economy"
	ClassBusiness Class = "business"
	ClassFirst    Class = "first"
)

// ClassConfig describes one bookable class.
type ClassConfig struct {
	ID             Class   `json:"id"`
	Name           string  `json:"name"`
	TimeMultiplier float64 `json:"timeMultiplier"`
}

// Classes lists the available classes. Higher classes shorten travel time.
var Classes = []ClassConfig{
	{ID: ClassEconomy, Name: "Economy", TimeMultiplier: 1.0},
	{ID: ClassBusiness, Name: "Business", TimeMultiplier: 0.85},
	{ID: ClassFirst, Name: "First Class", TimeMultiplier: 0.75},
}

// MultiplierFor returns the time multiplier for a class.
func MultiplierFor(class Class) (float64, bool) {
	for _, c := range Classes {
		if c.ID == class {
			return c.TimeMultiplier, true
		}
	}
	return 0, false
}

// Segment is one hop of a journey with normalized progress bounds.
// Segments are contiguous and monotonic: the first starts at 0, the last
// ends at 1, and each end meets the next start.
type Segment struct {
	FromStationID string  `json:"from"`
	ToStationID   string  `json:"to"`
	DistanceKm    float64 `json:"distanceKm"`
	TimeSeconds   int     `json:"timeSeconds"`
	StartProgress float64 `json:"startProgress"`
	EndProgress   float64 `json:"endProgress"`
}

// PauseState exists only while the train is holding at a significant stop.
type PauseState struct {
	StationID             string `json:"stationId"`
	StationName           string `json:"stationName"`
	RemainingPauseSeconds int    `json:"remainingPauseSeconds"`
	TotalPauseSeconds     int    `json:"totalPauseSeconds"`
}

// Journey is the aggregate the simulator mutates every tick. External
// callers only ever see copies via Snapshot.
type Journey struct {
	ID                  string
	RegionCode          string
	StationIDs          []string
	SignificantStopIDs  map[string]struct{}
	CurrentSegmentIndex int
	SegmentProgress     float64
	Segments            []Segment
	TotalDistanceKm     float64
	TotalTimeMinutes    int
	TotalTimeSeconds    int
	PauseState          *PauseState
}

// NewJourney builds a journey from a routed path. Each segment's time is
// scaled by the class multiplier, and progress bounds are assigned
// proportionally to each segment's share of the scaled total.
func NewJourney(regionCode string, path routing.RoutePath, byID map[string]stations.Station, multiplier float64) *Journey {
	if multiplier <= 0 {
		multiplier = 1
	}

	segments := make([]Segment, 0, len(path.Segments))
	totalSeconds := 0
	for _, rs := range path.Segments {
		seconds := int(math.Round(float64(rs.TimeMinutes*60) * multiplier))
		if seconds < 1 {
			seconds = 1
		}
		segments = append(segments, Segment{
			FromStationID: rs.FromStationID,
			ToStationID:   rs.ToStationID,
			DistanceKm:    rs.DistanceKm,
			TimeSeconds:   seconds,
		})
		totalSeconds += seconds
	}

	elapsed := 0
	for i := range segments {
		segments[i].StartProgress = float64(elapsed) / float64(totalSeconds)
		elapsed += segments[i].TimeSeconds
		segments[i].EndProgress = float64(elapsed) / float64(totalSeconds)
	}
	if len(segments) > 0 {
		segments[0].StartProgress = 0
		segments[len(segments)-1].EndProgress = 1
	}

	return &Journey{
		ID:                 "journey-" + uuid.NewString(),
		RegionCode:         regionCode,
		StationIDs:         append([]string(nil), path.StationIDs...),
		SignificantStopIDs: routing.SignificantStops(path.StationIDs, byID, routing.DefaultStopSpacingKm),
		Segments:           segments,
		TotalDistanceKm:    path.TotalDistanceKm,
		TotalTimeMinutes:   path.TotalTimeMinutes,
		TotalTimeSeconds:   totalSeconds,
	}
}
