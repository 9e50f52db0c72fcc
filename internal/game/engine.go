package game

import (
	"log/slog"
	mathrand "math/rand"
	"sync"
	"time"
)

// Engine owns the random source and logger shared by all transitions. The
// transitions themselves are pure given the draws they consume; a fixed seed
// replays a run exactly.
type Engine struct {
	log *slog.Logger

	mu   sync.Mutex
	rand *mathrand.Rand
}

// NewEngine builds an engine seeded with seed, or the current time when seed
// is zero. A nil logger falls back to slog.Default().
func NewEngine(logger *slog.Logger, seed int64) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		log:  logger,
		rand: mathrand.New(mathrand.NewSource(seed)),
	}
}

func (e *Engine) nextFloat() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rand.Float64()
}
