package registry

import (
	"log/slog"
	"sync"

	"github.com/mcoot/gamelobby-go/internal/dependencies/clock"
	"github.com/mcoot/gamelobby-go/internal/model"
	"github.com/mcoot/gamelobby-go/internal/services/game"
	"github.com/mcoot/gamelobby-go/internal/services/identity"
)

// MaxCodeAttempts bounds how many colliding codes Create will re-roll
// before giving up. With a million possible codes the bound is only ever
// reached when the code space is effectively full.
const MaxCodeAttempts = 100

// Registry is the authoritative map of live sessions by game code. Its
// lock covers only the map itself; per-session state has its own lock and
// the two are never held together.
type Registry struct {
	generator *identity.Generator
	clock     clock.Clock
	logger    *slog.Logger

	mu       sync.RWMutex
	sessions map[model.GameCode]*game.Session
}

// New creates an empty registry
func New(generator *identity.Generator, clk clock.Clock, logger *slog.Logger) *Registry {
	return &Registry{
		generator: generator,
		clock:     clk,
		logger:    logger,
		sessions:  make(map[model.GameCode]*game.Session),
	}
}

// Create registers a new session under a fresh code. Codes that collide
// with a live session are re-rolled; insertion and the uniqueness check
// happen under the same lock, so two concurrent creates can never claim
// the same code. After MaxCodeAttempts collisions it returns
// ErrCapacityExceeded.
func (r *Registry) Create() (*game.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for attempt := 0; attempt < MaxCodeAttempts; attempt++ {
		code := r.generator.GameCode()
		if _, taken := r.sessions[code]; taken {
			continue
		}

		session := game.NewSession(code, r.generator.Token(), r.clock, r.logger)
		r.sessions[code] = session
		return session, nil
	}

	r.logger.Warn("game code space exhausted",
		slog.Int("attempts", MaxCodeAttempts),
		slog.Int("live_sessions", len(r.sessions)))
	return nil, model.ErrCapacityExceeded
}

// Lookup returns the live session with the given code
func (r *Registry) Lookup(code model.GameCode) (*game.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[code]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return session, nil
}

// Count returns the number of live sessions
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
