package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	dbpkg "github.com/yungbote/artistdash-backend/internal/data/db"
	apphttp "github.com/yungbote/artistdash-backend/internal/http"
	"github.com/yungbote/artistdash-backend/internal/observability"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Clients  Clients
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics
	Server   *apphttp.Server

	store        *dbpkg.Service
	shutdownOTel func(context.Context) error
}

func NewLogger(cfg LogConfig) (*logger.Logger, error) {
	mode := cfg.Mode
	if mode == "" {
		mode = "development"
	}
	log, err := logger.Open(logger.Options{
		Mode:     mode,
		Level:    cfg.Level,
		Redact:   cfg.Redact,
		HashSalt: cfg.HashSalt,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

// OpenStore connects to the configured database and migrates the schema.
func OpenStore(log *logger.Logger, cfg dbpkg.Config) (*dbpkg.Service, error) {
	store, err := dbpkg.Open(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init %s: %w", cfg.Driver, err)
	}
	if err := dbpkg.AutoMigrateAll(store.DB()); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("%s automigrate: %w", cfg.Driver, err)
	}
	return store, nil
}

func New(ctx context.Context, cfg Config) (*App, error) {
	log, err := NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	shutdownOTel := observability.InitOTel(ctx, log, cfg.Otel)

	store, err := OpenStore(log, cfg.DB)
	if err != nil {
		_ = shutdownOTel(ctx)
		log.Sync()
		return nil, err
	}
	theDB := store.DB()

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics()
		if sqlDB, err := theDB.DB(); err == nil {
			if err := metrics.RegisterDBStats(sqlDB, cfg.DB.Driver); err != nil {
				log.Warn("db stats collector not registered", "error", err)
			}
		}
	}

	clients, err := wireClients(log, cfg)
	if err != nil {
		_ = store.Close()
		_ = shutdownOTel(ctx)
		log.Sync()
		return nil, err
	}

	reposet := wireRepos(theDB, log)
	serviceset, err := wireServices(theDB, log, cfg, reposet, clients)
	if err != nil {
		clients.Close()
		_ = store.Close()
		_ = shutdownOTel(ctx)
		log.Sync()
		return nil, err
	}

	handlerset := wireHandlers(log, theDB, serviceset)
	middleware := wireMiddleware(log, serviceset)
	server := wireServer(log, cfg, metrics, handlerset, middleware)

	return &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Clients:      clients,
		Repos:        reposet,
		Services:     serviceset,
		Metrics:      metrics,
		Server:       server,
		store:        store,
		shutdownOTel: shutdownOTel,
	}, nil
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "addr", a.Cfg.Server.Addr)
	return a.Server.Run(ctx)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	a.Clients.Close()
	if a.store != nil {
		_ = a.store.Close()
	}
	if a.shutdownOTel != nil {
		_ = a.shutdownOTel(context.Background())
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
