package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/okarpov/boardbanker/internal/dependencies/clock"
	"github.com/okarpov/boardbanker/internal/dependencies/random"
	"github.com/okarpov/boardbanker/internal/services/auth"
	"github.com/okarpov/boardbanker/internal/services/board"
	"github.com/okarpov/boardbanker/internal/services/session"
	"github.com/okarpov/boardbanker/internal/storage"
	"github.com/okarpov/boardbanker/internal/storage/memory"
	redisstorage "github.com/okarpov/boardbanker/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	SessionController *session.Controller
	BoardService      *board.Service
	AuthService       *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// AuthConfig holds banker passcode settings (optional)
	AuthConfig auth.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

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

	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, cfg.AuthConfig, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Store,
	clk clock.Clock,
	rnd random.Random,
	authCfg auth.Config,
	logger *slog.Logger,
) (*App, error) {
	sessionController := session.NewController(store, clk, rnd, logger)
	boardService := board.New(sessionController, rnd, logger)
	authService, err := auth.New(store, clk, rnd, authCfg, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		SessionController: sessionController,
		BoardService:      boardService,
		AuthService:       authService,
	}, nil
}
