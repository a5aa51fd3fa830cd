package models

import "trainfocus.app/internal/routing"

// ServiceModel describes the synthetic service operating a route
type ServiceModel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Type      string `json:"type"`
	SpeedKmh  int    `json:"speedKmh"`
}

// NewServiceModel creates a ServiceModel from a service
func NewServiceModel(s routing.Service) ServiceModel {
	return ServiceModel{
		ID:        s.ID,
		Name:      s.Name,
		ShortName: s.ShortName,
		Type:      string(s.Type),
		SpeedKmh:  s.SpeedKmh,
	}
}

// RouteModel describes one curated route offer
type RouteModel struct {
	ID                string            `json:"id"`
	FromStationID     string            `json:"from"`
	ToStationID       string            `json:"to"`
	TravelTimeMinutes int               `json:"travelTimeMinutes"`
	DistanceKm        float64           `json:"distanceKm"`
	IntermediateStops int               `json:"stops"`
	Service           ServiceModel      `json:"service"`
	Path              routing.RoutePath `json:"path"`
}

// NewRouteModel creates a RouteModel from a route
func NewRouteModel(r routing.Route) RouteModel {
	return RouteModel{
		ID:                r.ID,
		FromStationID:     r.FromStationID,
		ToStationID:       r.ToStationID,
		TravelTimeMinutes: r.TravelTimeMinutes,
		DistanceKm:        r.DistanceKm,
		IntermediateStops: r.IntermediateStops,
		Service:           NewServiceModel(r.Service),
		Path:              r.Path,
	}
}

// NewRouteModels converts a route slice, preserving order
func NewRouteModels(routes []routing.Route) []RouteModel {
	result := make([]RouteModel, len(routes))
	for i, r := range routes {
		result[i] = NewRouteModel(r)
	}
	return result
}
