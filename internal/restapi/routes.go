package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Routes wires every endpoint into an httprouter instance wrapped with
// request logging. All endpoints require a valid API key.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/api/v1/current-time.json", api.validateAPIKey(api.currentTimeHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/regions.json", api.validateAPIKey(api.regionsHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/classes.json", api.validateAPIKey(api.classesHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/stations/:regionCode", api.validateAPIKey(api.stationsHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/stations-nearby.json", api.validateAPIKey(api.nearbyStationsHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/destinations.json", api.validateAPIKey(api.destinationsHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/route.json", api.validateAPIKey(api.routeHandler))

	router.HandlerFunc(http.MethodPost, "/api/v1/journeys.json", api.validateAPIKey(api.startJourneyHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/journeys/current.json", api.validateAPIKey(api.currentJourneyHandler))
	router.HandlerFunc(http.MethodPost, "/api/v1/journeys/current/pause.json", api.validateAPIKey(api.pauseJourneyHandler))
	router.HandlerFunc(http.MethodPost, "/api/v1/journeys/current/resume.json", api.validateAPIKey(api.resumeJourneyHandler))
	router.HandlerFunc(http.MethodPost, "/api/v1/journeys/current/abandon.json", api.validateAPIKey(api.abandonJourneyHandler))
	router.HandlerFunc(http.MethodPost, "/api/v1/journeys/current/break.json", api.validateAPIKey(api.startBreakHandler))
	router.HandlerFunc(http.MethodPost, "/api/v1/journeys/current/end-break.json", api.validateAPIKey(api.endBreakHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/journeys/stats.json", api.validateAPIKey(api.statsHandler))

	return NewRequestLoggingMiddleware(api.Logger)(router)
}
