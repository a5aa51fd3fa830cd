package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"trainfocus.app/internal/app"
	"trainfocus.app/internal/cache"
	"trainfocus.app/internal/geo"
	"trainfocus.app/internal/journey"
	"trainfocus.app/internal/models"
	"trainfocus.app/internal/routing"
	"trainfocus.app/internal/stations"
)

// fixedSource serves a synthetic corridor of German stations, roughly 28 km
// apart, so routing and candidate selection have real work to do.
type fixedSource struct{}

func (fixedSource) Fetch(ctx context.Context, regionCode string) ([]stations.Station, error) {
	if regionCode != "de" {
		return nil, fmt.Errorf("unsupported region %q", regionCode)
	}

	all := make([]stations.Station, 40)
	for i := range all {
		all[i] = stations.Station{
			ID:          fmt.Sprintf("api-de-%d", i),
			Name:        fmt.Sprintf("Teststadt %d Hbf", i),
			City:        fmt.Sprintf("Teststadt %d", i),
			Country:     "Germany",
			CountryCode: "DE",
			Coordinates: geo.Coordinate{Lat: 50, Lon: 8 + 0.4*float64(i)},
			Timezone:    "Europe/Berlin",
		}
	}
	return all, nil
}

// createTestAPI creates a RestAPI instance backed by the fixed station source
// for use in tests.
func createTestAPI(t *testing.T) *RestAPI {
	t.Helper()

	application := &app.Application{
		Config: app.Config{
			Env:     "test",
			ApiKeys: []string{"TEST"},
		},
		Stations:  stations.NewManager(fixedSource{}, cache.NewMemoryCache[stations.RegionStations](cache.DefaultTTL), nil),
		Planner:   routing.NewPlanner(nil, rand.New(rand.NewSource(1))),
		Simulator: journey.NewSimulator(nil),
	}

	return NewRestAPI(application)
}

func getEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(api.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

func postEndpoint(t *testing.T, api *RestAPI, endpoint string, body any) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(api.Routes())
	defer server.Close()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	resp, err := http.Post(server.URL+endpoint, "application/json", &buf)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

func dataList(t *testing.T, response models.ResponseModel) []interface{} {
	t.Helper()

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "response data should contain a list")
	return list
}

func dataEntry(t *testing.T, response models.ResponseModel) map[string]interface{} {
	t.Helper()

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "response data should contain an entry")
	return entry
}
