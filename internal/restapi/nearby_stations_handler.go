package restapi

import (
	"net/http"
	"strings"

	"trainfocus.app/internal/models"
	"trainfocus.app/internal/stations"
	"trainfocus.app/internal/utils"
)

const defaultNearbyRadiusKm = 100.0

// nearbyStationsHandler returns stations within a radius of an origin
// station, closest first.
func (api *RestAPI) nearbyStationsHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	regionCode, fieldErrors := utils.RequireStringParam(queryParams, "regionCode", nil)
	stationID, fieldErrors := utils.RequireStringParam(queryParams, "stationId", fieldErrors)
	radiusKm, fieldErrors := utils.ParseFloatParam(queryParams, "radiusKm", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}
	if radiusKm <= 0 {
		radiusKm = defaultNearbyRadiusKm
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

	nearby := api.Stations.FindNearby(regionCode, origin, radiusKm)

	response := models.NewListResponse(models.NewStationModels(nearby),
		models.NewStationReferences([]models.StationModel{models.NewStationModel(origin)}))
	api.sendResponse(w, r, response)
}
