package stations

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"trainfocus.app/internal/cache"
	"trainfocus.app/internal/logging"
)

const nearbyCacheSize = 100

// Manager owns the station collection for each selected region. Fetches are
// cache-first against the durable TTL cache; concurrent fetches for the same
// region are deduplicated so only one network call races to populate the
// cache. The routing layers borrow read-only slices and never mutate them.
type Manager struct {
	source  Source
	durable cache.DurableCache[RegionStations]
	logger  *slog.Logger

	mu       sync.RWMutex
	loaded   map[string][]Station
	indexes  map[string]*Index
	inflight map[string]*regionFetch

	nearbyCache *lru.Cache[string, []Station]
}

type regionFetch struct {
	done     chan struct{}
	stations []Station
	err      error
}

// NewManager creates a Manager over the given source and durable cache.
func NewManager(source Source, durable cache.DurableCache[RegionStations], logger *slog.Logger) *Manager {
	nearby, _ := lru.New[string, []Station](nearbyCacheSize)
	return &Manager{
		source:      source,
		durable:     durable,
		logger:      logger,
		loaded:      make(map[string][]Station),
		indexes:     make(map[string]*Index),
		inflight:    make(map[string]*regionFetch),
		nearbyCache: nearby,
	}
}

// FetchStations returns the station set for a region. Order of preference:
// the in-memory session copy, the durable TTL cache, then the source. A
// failed fetch surfaces a *FetchError and leaves cached data untouched.
func (m *Manager) FetchStations(ctx context.Context, regionCode string) ([]Station, error) {
	regionCode = strings.ToLower(regionCode)

	m.mu.RLock()
	if loaded, ok := m.loaded[regionCode]; ok {
		m.mu.RUnlock()
		return loaded, nil
	}
	m.mu.RUnlock()

	entry, ok, err := m.durable.Get(ctx, regionCode)
	if err != nil {
		logging.LogError(m.logger, "station cache read failed", err,
			slog.String("region", regionCode))
	}
	if ok {
		m.retain(regionCode, entry.Stations)
		return entry.Stations, nil
	}

	return m.fetchDeduplicated(ctx, regionCode)
}

// fetchDeduplicated ensures a single source fetch per region code; late
// arrivals wait on the first caller's result.
func (m *Manager) fetchDeduplicated(ctx context.Context, regionCode string) ([]Station, error) {
	m.mu.Lock()
	if pending, ok := m.inflight[regionCode]; ok {
		m.mu.Unlock()
		select {
		case <-pending.done:
			return pending.stations, pending.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	pending := &regionFetch{done: make(chan struct{})}
	m.inflight[regionCode] = pending
	m.mu.Unlock()

	stations, err := m.fetchFromSource(ctx, regionCode)

	pending.stations = stations
	pending.err = err
	close(pending.done)

	m.mu.Lock()
	delete(m.inflight, regionCode)
	m.mu.Unlock()

	return stations, err
}

func (m *Manager) fetchFromSource(ctx context.Context, regionCode string) ([]Station, error) {
	fetched, err := m.source.Fetch(ctx, regionCode)
	if err != nil {
		return nil, &FetchError{RegionCode: regionCode, Err: err}
	}
	if len(fetched) == 0 {
		return nil, &FetchError{RegionCode: regionCode, Err: fmt.Errorf("source returned no stations")}
	}

	if err := m.durable.Put(ctx, regionCode, RegionStations{RegionCode: regionCode, Stations: fetched}); err != nil {
		// A cache write failure is not a fetch failure; the stations are
		// still good for this session.
		logging.LogError(m.logger, "station cache write failed", err,
			slog.String("region", regionCode))
	}

	m.retain(regionCode, fetched)

	logging.LogOperation(m.logger, "stations_fetched",
		slog.String("region", regionCode),
		slog.Int("count", len(fetched)))

	return fetched, nil
}

func (m *Manager) retain(regionCode string, all []Station) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loaded[regionCode] = all
	delete(m.indexes, regionCode)
}

// StationsFor returns the already-loaded station set for a region, or false
// if the region has not been fetched this session.
func (m *Manager) StationsFor(regionCode string) ([]Station, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	loaded, ok := m.loaded[strings.ToLower(regionCode)]
	return loaded, ok
}

// FindNearby returns stations within maxDistanceKm of the origin, closest
// first. Results are cached per (region, origin, radius).
func (m *Manager) FindNearby(regionCode string, origin Station, maxDistanceKm float64) []Station {
	regionCode = strings.ToLower(regionCode)
	cacheKey := fmt.Sprintf("%s:%s:%.0f", regionCode, origin.ID, maxDistanceKm)

	if cached, ok := m.nearbyCache.Get(cacheKey); ok {
		return cached
	}

	index := m.indexFor(regionCode)
	if index == nil {
		return nil
	}

	nearby := index.Within(origin.Coordinates, maxDistanceKm, origin.ID)
	m.nearbyCache.Add(cacheKey, nearby)
	return nearby
}

func (m *Manager) indexFor(regionCode string) *Index {
	m.mu.RLock()
	index, ok := m.indexes[regionCode]
	m.mu.RUnlock()
	if ok {
		return index
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if index, ok := m.indexes[regionCode]; ok {
		return index
	}
	loaded, ok := m.loaded[regionCode]
	if !ok {
		return nil
	}
	index = NewIndex(loaded)
	m.indexes[regionCode] = index
	return index
}
