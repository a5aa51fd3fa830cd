package restapi

import (
	"fmt"
	"net/http"
	"strings"

	"trainfocus.app/internal/models"
	"trainfocus.app/internal/routing"
	"trainfocus.app/internal/stations"
	"trainfocus.app/internal/utils"
)

// routeHandler expands a from/to pair into a full multi-hop route.
func (api *RestAPI) routeHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	regionCode, fieldErrors := utils.RequireStringParam(queryParams, "regionCode", nil)
	fromID, fieldErrors := utils.RequireStringParam(queryParams, "from", fieldErrors)
	toID, fieldErrors := utils.RequireStringParam(queryParams, "to", fieldErrors)
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

	byID := stations.ByID(all)
	from, okFrom := byID[fromID]
	to, okTo := byID[toID]
	if !okFrom || !okTo {
		api.sendNotFound(w, r)
		return
	}

	path := api.Planner.BuildPath(from, to, all)

	intermediateStops := 0
	if len(path.StationIDs) > 2 {
		intermediateStops = len(path.StationIDs) - 2
	}

	route := routing.Route{
		ID:                fmt.Sprintf("route-%s-%s", from.ID, to.ID),
		FromStationID:     from.ID,
		ToStationID:       to.ID,
		TravelTimeMinutes: path.TotalTimeMinutes,
		DistanceKm:        path.TotalDistanceKm,
		IntermediateStops: intermediateStops,
		Service:           routing.ServiceForDistance(path.TotalDistanceKm),
		Path:              path,
	}

	response := models.NewEntryResponse(models.NewRouteModel(route),
		models.NewStationReferences([]models.StationModel{
			models.NewStationModel(from),
			models.NewStationModel(to),
		}))
	api.sendResponse(w, r, response)
}
