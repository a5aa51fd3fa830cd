package models

// ReferencesModel References model for related data
type ReferencesModel struct {
	Regions  []RegionModel  `json:"regions"`
	Stations []StationModel `json:"stations"`
	Routes   []interface{}  `json:"routes"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Regions:  []RegionModel{},
		Stations: []StationModel{},
		Routes:   []interface{}{},
	}
}

// NewStationReferences creates a References model carrying the given stations
func NewStationReferences(stationModels []StationModel) ReferencesModel {
	refs := NewEmptyReferences()
	refs.Stations = stationModels
	return refs
}
