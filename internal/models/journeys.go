package models

import (
	"trainfocus.app/internal/journey"
)

// PositionModel is a point along the journey
type PositionModel struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PauseModel describes an in-progress hold at a significant stop
type PauseModel struct {
	StationID             string `json:"stationId"`
	StationName           string `json:"stationName"`
	RemainingPauseSeconds int    `json:"remainingPauseSeconds"`
	TotalPauseSeconds     int    `json:"totalPauseSeconds"`
}

// JourneyModel is the live view of the active journey
type JourneyModel struct {
	ID                    string            `json:"id"`
	Status                string            `json:"status"`
	RegionCode            string            `json:"regionCode"`
	StationIDs            []string          `json:"stations"`
	Segments              []journey.Segment `json:"segments"`
	CurrentSegmentIndex   int               `json:"currentSegmentIndex"`
	SegmentProgress       float64           `json:"segmentProgress"`
	OverallProgress       float64           `json:"overallProgress"`
	Position              PositionModel     `json:"position"`
	ElapsedSeconds        int               `json:"elapsedSeconds"`
	TotalSeconds          int               `json:"totalSeconds"`
	TotalDistanceKm       float64           `json:"totalDistanceKm"`
	Pause                 *PauseModel       `json:"pause,omitempty"`
	BreakRemainingSeconds int               `json:"breakRemainingSeconds,omitempty"`
}

// NewJourneyModel creates a JourneyModel from a simulator snapshot
func NewJourneyModel(snap journey.Snapshot) JourneyModel {
	m := JourneyModel{
		ID:                    snap.JourneyID,
		Status:                string(snap.Status),
		RegionCode:            snap.RegionCode,
		StationIDs:            snap.StationIDs,
		Segments:              snap.Segments,
		CurrentSegmentIndex:   snap.CurrentSegmentIndex,
		SegmentProgress:       snap.SegmentProgress,
		OverallProgress:       snap.OverallProgress,
		Position:              PositionModel{Lat: snap.Position.Lat, Lon: snap.Position.Lon},
		ElapsedSeconds:        snap.ElapsedSeconds,
		TotalSeconds:          snap.TotalSeconds,
		TotalDistanceKm:       snap.TotalDistanceKm,
		BreakRemainingSeconds: snap.BreakRemainingSeconds,
	}
	if snap.PauseState != nil {
		m.Pause = &PauseModel{
			StationID:             snap.PauseState.StationID,
			StationName:           snap.PauseState.StationName,
			RemainingPauseSeconds: snap.PauseState.RemainingPauseSeconds,
			TotalPauseSeconds:     snap.PauseState.TotalPauseSeconds,
		}
	}
	return m
}

// ClassModel describes one bookable journey class
type ClassModel struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	TimeMultiplier float64 `json:"timeMultiplier"`
}

// NewClassModels lists the available journey classes
func NewClassModels() []ClassModel {
	result := make([]ClassModel, len(journey.Classes))
	for i, c := range journey.Classes {
		result[i] = ClassModel{
			ID:             string(c.ID),
			Name:           c.Name,
			TimeMultiplier: c.TimeMultiplier,
		}
	}
	return result
}
