package stations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/jamespfennell/gtfs"

	"trainfocus.app/internal/geo"
)

// GTFSSource loads stations from a GTFS static feed (URL or local zip file).
// It lets the engine run against an agency's own feed instead of the
// photo-station API; the region code tags the resulting stations.
type GTFSSource struct {
	FeedSource string
}

func (s *GTFSSource) Fetch(ctx context.Context, regionCode string) ([]Station, error) {
	data, err := rawFeedData(ctx, s.FeedSource)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS feed: %w", err)
	}

	staticData, err := gtfs.ParseStatic(data, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS feed: %w", err)
	}

	return StationsFromGTFS(staticData, regionCode), nil
}

// StationsFromGTFS converts the stops of a parsed GTFS static feed into
// stations. Stops without coordinates are skipped.
func StationsFromGTFS(staticData *gtfs.Static, regionCode string) []Station {
	code := strings.ToLower(regionCode)

	timezone := TimezoneFor(code)
	if len(staticData.Agencies) > 0 && staticData.Agencies[0].Timezone != "" {
		timezone = staticData.Agencies[0].Timezone
	}

	result := make([]Station, 0, len(staticData.Stops))
	for i := range staticData.Stops {
		stop := &staticData.Stops[i]
		if stop.Latitude == nil || stop.Longitude == nil {
			continue
		}
		result = append(result, Station{
			ID:          fmt.Sprintf("gtfs-%s-%s", code, stop.Id),
			Name:        stop.Name,
			City:        deriveCity(stop.Name),
			Country:     RegionName(code),
			CountryCode: strings.ToUpper(code),
			Coordinates: geo.Coordinate{Lat: *stop.Latitude, Lon: *stop.Longitude},
			Timezone:    timezone,
		})
	}
	return result
}

func rawFeedData(ctx context.Context, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() // nolint

	return io.ReadAll(resp.Body)
}
