package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/gamelobby-go/internal/dependencies/clock"
	"github.com/mcoot/gamelobby-go/internal/dependencies/random"
	"github.com/mcoot/gamelobby-go/internal/services/identity"
	"github.com/mcoot/gamelobby-go/internal/services/lobby"
	"github.com/mcoot/gamelobby-go/internal/services/registry"
	"github.com/mcoot/gamelobby-go/internal/storage"
	"github.com/mcoot/gamelobby-go/internal/storage/memory"
	redisstorage "github.com/mcoot/gamelobby-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Archive storage.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Generator  *identity.Generator
	Registry   *registry.Registry
	Controller *lobby.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the archive backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create the archive store based on type
	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	generator := identity.NewGenerator(rnd)
	reg := registry.New(generator, clk, logger)
	controller := lobby.NewController(reg, generator, store, logger)

	return &App{
		Archive:    store,
		Clock:      clk,
		Random:     rnd,
		Generator:  generator,
		Registry:   reg,
		Controller: controller,
	}
}
