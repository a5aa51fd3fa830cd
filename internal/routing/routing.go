// Package routing turns a region's station set into concrete journeys: it
// expands an origin/destination pair into a dense multi-hop path, curates
// destination suggestions bucketed by travel time, and annotates paths with
// distance/time segments and significant stops.
package routing

import (
	"math"

	"trainfocus.app/internal/stations"
)

// Above this segment length a hop is served at high-speed rail pace.
const highSpeedThresholdKm = 100.0

const (
	highSpeedKmh = 200.0
	standardKmh  = 80.0
)

// RouteSegment is one hop between adjacent stations in a path.
type RouteSegment struct {
	FromStationID string  `json:"from"`
	ToStationID   string  `json:"to"`
	DistanceKm    float64 `json:"distanceKm"`
	TimeMinutes   int     `json:"timeMinutes"`
}

// RoutePath is a full station path with per-hop segments and totals.
// Invariant: len(StationIDs) == len(Segments)+1 and segment endpoints chain.
type RoutePath struct {
	StationIDs       []string       `json:"stations"`
	Segments         []RouteSegment `json:"segments"`
	TotalDistanceKm  float64        `json:"totalDistanceKm"`
	TotalTimeMinutes int            `json:"totalTimeMinutes"`
}

// Candidate is a curated destination suggestion.
type Candidate struct {
	Station           stations.Station `json:"station"`
	TravelTimeMinutes int              `json:"travelTimeMinutes"`
	DistanceKm        float64          `json:"distanceKm"`
}

// ServiceType classifies a route by total distance.
type ServiceType string

const (
	ServiceHighSpeed ServiceType = "high-speed"
	ServiceIntercity ServiceType = "intercity"
	ServiceRegional  ServiceType = "regional"
	ServiceLocal     ServiceType = "local"
)

// Service describes the synthetic train service operating a route.
type Service struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	ShortName string      `json:"shortName"`
	Type      ServiceType `json:"type"`
	SpeedKmh  int         `json:"speedKmh"`
}

var services = map[ServiceType]Service{
	ServiceHighSpeed: {ID: "high-speed", Name: "High-Speed", ShortName: "HS", Type: ServiceHighSpeed, SpeedKmh: 250},
	ServiceIntercity: {ID: "intercity", Name: "Intercity", ShortName: "IC", Type: ServiceIntercity, SpeedKmh: 160},
	ServiceRegional:  {ID: "regional", Name: "Regional", ShortName: "RE", Type: ServiceRegional, SpeedKmh: 100},
	ServiceLocal:     {ID: "local", Name: "Local", ShortName: "S", Type: ServiceLocal, SpeedKmh: 70},
}

// ServiceForDistance classifies a route's service by its total distance.
func ServiceForDistance(distanceKm float64) Service {
	switch {
	case distanceKm > 150:
		return services[ServiceHighSpeed]
	case distanceKm > 80:
		return services[ServiceIntercity]
	case distanceKm > 30:
		return services[ServiceRegional]
	default:
		return services[ServiceLocal]
	}
}

// Route is a curated, water-validated route offered as a destination choice.
type Route struct {
	ID                string    `json:"id"`
	FromStationID     string    `json:"from"`
	ToStationID       string    `json:"to"`
	TravelTimeMinutes int       `json:"travelTimeMinutes"`
	DistanceKm        float64   `json:"distanceKm"`
	IntermediateStops int       `json:"stops"`
	Service           Service   `json:"service"`
	Path              RoutePath `json:"path"`
}

// travelTimeMinutes derives a synthetic travel time from distance and an
// assumed average speed.
func travelTimeMinutes(distanceKm float64, highSpeed bool) int {
	speed := standardKmh
	if highSpeed {
		speed = highSpeedKmh
	}
	return int(math.Round(distanceKm / speed * 60))
}
