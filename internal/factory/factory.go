package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/playerlist/internal/dependencies/clock"
	"github.com/mcoot/playerlist/internal/playerlist"
	"github.com/mcoot/playerlist/internal/settings"
	"github.com/mcoot/playerlist/internal/storage"
	"github.com/mcoot/playerlist/internal/storage/file"
	"github.com/mcoot/playerlist/internal/storage/memory"
	redisstorage "github.com/mcoot/playerlist/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Store *playerlist.Store

	// Storage
	Backend storage.Backend

	// External dependencies
	Clock   clock.Clock
	Locator settings.Locator

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// PlayerlistPath overrides the playerlist location (optional)
	// If empty, the file is looked up in the config directory
	PlayerlistPath string
	// ConfigDir overrides the config directory (optional)
	// If empty, the OS user config directory is used
	ConfigDir string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("file", "memory" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates the backend and loads the playerlist. An error wrapping
// model.ErrUnrecoverable means an existing playerlist could not be read and
// the process must not continue.
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var (
		backend storage.Backend
		closer  io.Closer
	)
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeFile:
		backend = file.New()
	case StorageTypeMemory:
		backend = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		backend = redisStore
		closer = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'file', 'memory' or 'redis'")
	}

	var locator settings.Locator = settings.NewOSLocator(settings.DefaultAppName)
	if cfg.ConfigDir != "" {
		locator = settings.StaticLocator{Dir: cfg.ConfigDir}
	}

	app, err := newWithDependencies(cfg.PlayerlistPath, backend, clock.New(), locator, logger)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(path string, backend storage.Backend, clk clock.Clock, locator settings.Locator, logger *slog.Logger) (*App, error) {
	store, err := playerlist.LoadOrCreate(path, locator,
		playerlist.WithBackend(backend),
		playerlist.WithClock(clk),
		playerlist.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return &App{
		Store:   store,
		Backend: backend,
		Clock:   clk,
		Locator: locator,
	}, nil
}

// Close releases backend connections
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
