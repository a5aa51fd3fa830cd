package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"trainfocus.app/internal/app"
	"trainfocus.app/internal/cache"
	"trainfocus.app/internal/journey"
	"trainfocus.app/internal/logging"
	"trainfocus.app/internal/restapi"
	"trainfocus.app/internal/routing"
	"trainfocus.app/internal/stations"
)

const defaultStationAPIBaseURL = "https://api.railway-stations.org"

func main() {
	// A missing .env file is fine; flags and defaults cover everything.
	_ = godotenv.Load()

	var cfg app.Config
	var apiKeysFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", envOr("ENV", "development"), "Environment (development|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", envOr("API_KEYS", "test"), "Comma Separated API Keys (test, etc)")
	flag.StringVar(&cfg.StationAPIBaseURL, "station-api-url", envOr("STATION_API_URL", defaultStationAPIBaseURL), "Base URL of the photo-station API")
	flag.StringVar(&cfg.GtfsURL, "gtfs-url", envOr("GTFS_URL", ""), "Optional GTFS static feed (URL or zip path) used instead of the station API")
	flag.StringVar(&cfg.CacheDBPath, "cache-db", envOr("CACHE_DB_PATH", ""), "Path to the sqlite station cache (empty for in-memory)")
	flag.Parse()

	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var durable cache.DurableCache[stations.RegionStations]
	if cfg.CacheDBPath != "" {
		sqliteCache, err := cache.NewSQLiteCache[stations.RegionStations](cfg.CacheDBPath, cache.DefaultTTL)
		if err != nil {
			logger.Error("failed to open station cache", "error", err, "path", cfg.CacheDBPath)
			os.Exit(1)
		}
		defer logging.SafeCloseWithLogging(sqliteCache, logger, "station_cache")
		durable = sqliteCache
	} else {
		durable = cache.NewMemoryCache[stations.RegionStations](cache.DefaultTTL)
	}

	var source stations.Source
	if cfg.GtfsURL != "" {
		source = &stations.GTFSSource{FeedSource: cfg.GtfsURL}
	} else {
		source = stations.NewAPISource(cfg.StationAPIBaseURL)
	}

	simulator := journey.NewSimulator(logger)
	driver := journey.NewDriver(simulator, journey.DefaultTickInterval)
	driver.Start()
	defer driver.Stop()

	application := &app.Application{
		Config:    cfg,
		Logger:    logger,
		Stations:  stations.NewManager(source, durable, logger),
		Planner:   routing.NewPlanner(logger, rand.New(rand.NewSource(time.Now().UnixNano()))),
		Simulator: simulator,
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err := srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
