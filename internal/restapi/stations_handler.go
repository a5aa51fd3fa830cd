package restapi

import (
	"net/http"
	"strings"

	"trainfocus.app/internal/models"
	"trainfocus.app/internal/utils"
)

// stationsHandler returns the full station set for one region, fetching it
// through the manager's cache hierarchy on first access.
func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	regionCode := strings.ToLower(utils.ExtractIDFromParams(r, "regionCode"))

	if !regionSupported(regionCode) {
		api.validationErrorResponse(w, r, map[string][]string{
			"regionCode": {"Unknown or inactive region."},
		})
		return
	}

	all, err := api.Stations.FetchStations(r.Context(), regionCode)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(models.NewStationModels(all), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
