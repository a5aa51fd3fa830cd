package stations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"trainfocus.app/internal/geo"
)

// Source supplies the raw station set for a region. Implementations: the
// photo-station HTTP API and GTFS static feeds.
type Source interface {
	Fetch(ctx context.Context, regionCode string) ([]Station, error)
}

// apiStation is one raw record from the photo-station API. Only identifier,
// title, coordinates and country are consumed; photo metadata is ignored.
type apiStation struct {
	Country  string  `json:"country"`
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Inactive bool    `json:"inactive"`
}

type apiResponse struct {
	Stations []apiStation `json:"stations"`
}

// APISource fetches stations from the photo-station HTTP API.
type APISource struct {
	BaseURL string
	Client  *http.Client
}

// NewAPISource creates an APISource with a sensible request timeout.
func NewAPISource(baseURL string) *APISource {
	return &APISource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *APISource) Fetch(ctx context.Context, regionCode string) ([]Station, error) {
	url := fmt.Sprintf("%s/photoStationsByCountry/%s", s.BaseURL, strings.ToLower(regionCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing station response: %w", err)
	}

	result := make([]Station, 0, len(parsed.Stations))
	for _, raw := range parsed.Stations {
		if raw.Inactive {
			continue
		}
		result = append(result, transformStation(raw))
	}
	return result, nil
}

// Generic station-name suffixes stripped when deriving a display city.
var citySuffixPattern = regexp.MustCompile(`(?i)\s*(Hbf|Hauptbahnhof|Station|Central|Centraal|Gare|Bahnhof)\s*`)

func deriveCity(title string) string {
	city := strings.TrimSpace(citySuffixPattern.ReplaceAllString(title, ""))
	if city == "" {
		return title
	}
	return city
}

func transformStation(raw apiStation) Station {
	code := strings.ToLower(raw.Country)
	return Station{
		ID:          fmt.Sprintf("api-%s-%s", code, raw.ID),
		Name:        raw.Title,
		City:        deriveCity(raw.Title),
		Country:     RegionName(code),
		CountryCode: strings.ToUpper(code),
		Coordinates: geo.Coordinate{Lat: raw.Lat, Lon: raw.Lon},
		Timezone:    TimezoneFor(code),
	}
}
