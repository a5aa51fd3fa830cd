// Package stations fetches and caches the station set for a region and
// exposes it to the routing and simulation layers. Stations are immutable
// once fetched for a session; identity is the station ID and two stations
// are never merged.
package stations

import (
	"fmt"

	"trainfocus.app/internal/geo"
)

// Station is one railway station in a region's network.
type Station struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	City        string         `json:"city"`
	Country     string         `json:"country"`
	CountryCode string         `json:"countryCode"`
	Coordinates geo.Coordinate `json:"coordinates"`
	Timezone    string         `json:"timezone"`
}

// RegionStations is the durable cache value for one region.
type RegionStations struct {
	RegionCode string    `json:"regionCode"`
	Stations   []Station `json:"stations"`
}

// FetchError reports that a region's station data could not be retrieved or
// parsed. It is surfaced to the caller without retry; previously cached data
// for other regions is unaffected.
type FetchError struct {
	RegionCode string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching stations for region %q: %v", e.RegionCode, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ByID builds a lookup map keyed by station ID.
func ByID(all []Station) map[string]Station {
	m := make(map[string]Station, len(all))
	for _, s := range all {
		m[s.ID] = s
	}
	return m
}
