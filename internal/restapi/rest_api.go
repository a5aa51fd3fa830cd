// Package restapi exposes the journey engine over a versioned JSON API.
package restapi

import (
	"net/http"

	"trainfocus.app/internal/app"
)

type RestAPI struct {
	*app.Application
}

// NewRestAPI creates a new RestAPI instance
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
	}
}

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func (api *RestAPI) validateAPIKey(finalHandler handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	}
}
