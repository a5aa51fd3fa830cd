package models

import "trainfocus.app/internal/stations"

// RegionModel describes one selectable region
type RegionModel struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Area   string `json:"area"`
	Active bool   `json:"active"`
}

// NewRegionModel creates a RegionModel from a region
func NewRegionModel(r stations.Region) RegionModel {
	return RegionModel{
		Code:   r.Code,
		Name:   r.Name,
		Area:   r.Area,
		Active: r.Active,
	}
}

// StationModel describes one station
type StationModel struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`
}

// NewStationModel creates a StationModel from a station
func NewStationModel(s stations.Station) StationModel {
	return StationModel{
		ID:          s.ID,
		Name:        s.Name,
		City:        s.City,
		Country:     s.Country,
		CountryCode: s.CountryCode,
		Lat:         s.Coordinates.Lat,
		Lon:         s.Coordinates.Lon,
		Timezone:    s.Timezone,
	}
}

// NewStationModels converts a station slice, preserving order
func NewStationModels(all []stations.Station) []StationModel {
	result := make([]StationModel, len(all))
	for i, s := range all {
		result[i] = NewStationModel(s)
	}
	return result
}
