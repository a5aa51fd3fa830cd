package restapi

import (
	"net/http"
	"strings"

	"trainfocus.app/internal/models"
	"trainfocus.app/internal/stations"
	"trainfocus.app/internal/utils"
)

// destinationsHandler returns the curated, water-validated destination routes
// for an origin station, spread across travel-time buckets.
func (api *RestAPI) destinationsHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	regionCode, fieldErrors := utils.RequireStringParam(queryParams, "regionCode", nil)
	stationID, fieldErrors := utils.RequireStringParam(queryParams, "stationId", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	regionCode = strings.ToLower(regionCode)
	all, err := api.Stations.FetchStations(r.Context(), regionCode)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	origin, ok := stations.ByID(all)[stationID]
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	candidates := api.Planner.SelectCandidates(origin, all, regionCode)
	routes := api.Planner.BuildCuratedRoutes(origin, candidates, all)

	stationRefs := make([]models.StationModel, 0, len(routes)+1)
	stationRefs = append(stationRefs, models.NewStationModel(origin))
	byID := stations.ByID(all)
	for _, route := range routes {
		if destination, ok := byID[route.ToStationID]; ok {
			stationRefs = append(stationRefs, models.NewStationModel(destination))
		}
	}

	response := models.NewListResponse(models.NewRouteModels(routes),
		models.NewStationReferences(stationRefs))
	api.sendResponse(w, r, response)
}
