package routing

import (
	"log/slog"
	"math/rand"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	pathCacheSize      = 200
	candidateCacheSize = 100
)

// Planner owns the routing caches and the random source used for candidate
// selection. The simulator itself stays deterministic; randomness is
// confined to bucket shuffling here, and the source is injected so tests
// can pin a seed.
type Planner struct {
	logger *slog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand

	pathCache      *lru.Cache[pathKey, []string]
	candidateCache *lru.Cache[candidateKey, []Candidate]
}

type pathKey struct {
	fromID string
	toID   string
}

type candidateKey struct {
	originID   string
	regionCode string
}

// NewPlanner creates a Planner using the given random source.
func NewPlanner(logger *slog.Logger, rng *rand.Rand) *Planner {
	paths, _ := lru.New[pathKey, []string](pathCacheSize)
	candidates, _ := lru.New[candidateKey, []Candidate](candidateCacheSize)
	return &Planner{
		logger:         logger,
		rng:            rng,
		pathCache:      paths,
		candidateCache: candidates,
	}
}

func (p *Planner) shuffle(n int, swap func(i, j int)) {
	p.rngMu.Lock()
	defer p.rngMu.Unlock()
	p.rng.Shuffle(n, swap)
}
