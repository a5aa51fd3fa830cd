package restapi

import (
	"net/http"

	"trainfocus.app/internal/models"
	"trainfocus.app/internal/stations"
)

// regionsHandler lists the regions the station data source can serve.
func (api *RestAPI) regionsHandler(w http.ResponseWriter, r *http.Request) {
	regionModels := make([]models.RegionModel, 0, len(stations.SupportedRegions))
	for _, region := range stations.SupportedRegions {
		regionModels = append(regionModels, models.NewRegionModel(region))
	}

	response := models.NewListResponse(regionModels, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

// classesHandler lists the bookable journey classes.
func (api *RestAPI) classesHandler(w http.ResponseWriter, r *http.Request) {
	response := models.NewListResponse(models.NewClassModels(), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func regionSupported(code string) bool {
	for _, region := range stations.SupportedRegions {
		if region.Code == code {
			return region.Active
		}
	}
	return false
}
