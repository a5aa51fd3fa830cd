package restapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"trainfocus.app/internal/journey"
	"trainfocus.app/internal/models"
	"trainfocus.app/internal/stations"
)

type startJourneyRequest struct {
	RegionCode    string `json:"regionCode"`
	FromStationID string `json:"fromStationId"`
	ToStationID   string `json:"toStationId"`
	Class         string `json:"class"`
}

// startJourneyHandler books a journey on the simulator. Only one journey can
// be active at a time; a second booking attempt returns 409.
func (api *RestAPI) startJourneyHandler(w http.ResponseWriter, r *http.Request) {
	var req startJourneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"Invalid JSON request body."},
		})
		return
	}

	fieldErrors := make(map[string][]string)
	if req.RegionCode == "" {
		fieldErrors["regionCode"] = append(fieldErrors["regionCode"], `Missing required field "regionCode".`)
	}
	if req.FromStationID == "" {
		fieldErrors["fromStationId"] = append(fieldErrors["fromStationId"], `Missing required field "fromStationId".`)
	}
	if req.ToStationID == "" {
		fieldErrors["toStationId"] = append(fieldErrors["toStationId"], `Missing required field "toStationId".`)
	}

	if req.Class == "" {
		req.Class = string(journey.ClassEconomy)
	}
	multiplier, ok := journey.MultiplierFor(journey.Class(req.Class))
	if !ok {
		fieldErrors["class"] = append(fieldErrors["class"], `Invalid field value for field "class".`)
	}

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	regionCode := strings.ToLower(req.RegionCode)
	all, err := api.Stations.FetchStations(r.Context(), regionCode)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	byID := stations.ByID(all)
	from, okFrom := byID[req.FromStationID]
	to, okTo := byID[req.ToStationID]
	if !okFrom || !okTo {
		api.sendNotFound(w, r)
		return
	}

	path := api.Planner.BuildPath(from, to, all)
	booked := journey.NewJourney(regionCode, path, byID, multiplier)

	if err := api.Simulator.Start(booked, byID); err != nil {
		if errors.Is(err, journey.ErrJourneyActive) {
			api.conflictResponse(w, r, "a journey is already active")
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendCurrentJourney(w, r)
}

// currentJourneyHandler returns the live snapshot of the active journey.
func (api *RestAPI) currentJourneyHandler(w http.ResponseWriter, r *http.Request) {
	api.sendCurrentJourney(w, r)
}

func (api *RestAPI) sendCurrentJourney(w http.ResponseWriter, r *http.Request) {
	snap, ok := api.Simulator.Snapshot()
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(models.NewJourneyModel(snap), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) pauseJourneyHandler(w http.ResponseWriter, r *http.Request) {
	if err := api.Simulator.Pause(); err != nil {
		api.conflictResponse(w, r, err.Error())
		return
	}
	api.sendCurrentJourney(w, r)
}

func (api *RestAPI) resumeJourneyHandler(w http.ResponseWriter, r *http.Request) {
	if err := api.Simulator.Resume(); err != nil {
		api.conflictResponse(w, r, err.Error())
		return
	}
	api.sendCurrentJourney(w, r)
}

func (api *RestAPI) abandonJourneyHandler(w http.ResponseWriter, r *http.Request) {
	api.Simulator.Abandon()
	api.sendResponse(w, r, models.NewOKResponse(nil))
}

func (api *RestAPI) startBreakHandler(w http.ResponseWriter, r *http.Request) {
	if err := api.Simulator.StartBreak(); err != nil {
		api.conflictResponse(w, r, err.Error())
		return
	}
	api.sendCurrentJourney(w, r)
}

func (api *RestAPI) endBreakHandler(w http.ResponseWriter, r *http.Request) {
	if err := api.Simulator.EndBreak(); err != nil {
		api.conflictResponse(w, r, err.Error())
		return
	}
	api.sendResponse(w, r, models.NewOKResponse(nil))
}

// statsHandler returns totals accumulated across completed journeys.
func (api *RestAPI) statsHandler(w http.ResponseWriter, r *http.Request) {
	response := models.NewEntryResponse(api.Simulator.Stats(), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
