package app

import (
	"log/slog"

	"trainfocus.app/internal/journey"
	"trainfocus.app/internal/routing"
	"trainfocus.app/internal/stations"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config    Config
	Logger    *slog.Logger
	Stations  *stations.Manager
	Planner   *routing.Planner
	Simulator *journey.Simulator
}

// Config holds all the configuration settings for our Application. These are
// read from command-line flags (with .env fallback) when the Application
// starts.
type Config struct {
	Port              int
	Env               string
	ApiKeys           []string
	StationAPIBaseURL string
	GtfsURL           string
	CacheDBPath       string
}
