// Package app assembles the store, its persistence and the HTTP surface
// from a Config.
package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/kanban-board/internal/config"
	"github.com/BuzzLyutic/kanban-board/internal/handler"
	"github.com/BuzzLyutic/kanban-board/internal/model"
	"github.com/BuzzLyutic/kanban-board/internal/persist"
	"github.com/BuzzLyutic/kanban-board/internal/service"
	"github.com/BuzzLyutic/kanban-board/internal/state"
	"github.com/BuzzLyutic/kanban-board/internal/storage/local"
	"github.com/BuzzLyutic/kanban-board/internal/storage/remote"
	"github.com/BuzzLyutic/kanban-board/internal/worker"
)

type App struct {
	Config  config.Config
	Logger  *zap.Logger
	Store   *state.Store
	Service *service.BoardService
	Local   *local.Store
	Remote  *remote.Store

	db      *local.DB
	pool    *worker.Pool
	detach  func()
	closers []func()
}

// NewLogger follows LOG_LEVEL: debug gets the development logger, any other
// valid level tunes the production one.
func NewLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	return cfg.Build()
}

// New opens the local database, connects the remote backend if one is
// configured and starts persistence. A remote backend that cannot be reached
// is logged and the app runs local-only.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	db, err := local.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("app.New: %w", err)
	}

	a := &App{Config: cfg, Logger: logger, db: db}
	a.Local = local.NewStore(db, cfg.StateKey, logger)

	backend, closeBackend := connectBackend(ctx, cfg, logger)
	if closeBackend != nil {
		a.closers = append(a.closers, closeBackend)
	}
	a.Remote = remote.NewStore(backend, cfg.RemoteStateID, logger)

	initial, ok := a.Local.Load()
	if !ok {
		initial = model.DefaultDocument()
	}
	a.Store = state.NewStore(initial, state.NewReducer(state.DefaultFactory()))

	a.pool = worker.NewPool(logger, cfg.WorkerCount, 0)
	a.pool.Start(ctx)

	var remoteSink persist.Sink
	var loader service.RemoteLoader
	if a.Remote.Configured() {
		remoteSink = a.Remote
		loader = a.Remote
	}
	a.detach = persist.New(a.pool, a.Local, remoteSink, logger).Attach(a.Store)
	a.Service = service.NewBoardService(a.Store, loader, logger)

	logger.Info("state loaded",
		zap.String("data_dir", cfg.DataDir),
		zap.Bool("local", ok),
		zap.String("remote", cfg.RemoteBackend),
		zap.Int("boards", len(initial.Boards)),
	)
	return a, nil
}

func connectBackend(ctx context.Context, cfg config.Config, logger *zap.Logger) (remote.Backend, func()) {
	switch cfg.RemoteBackend {
	case config.BackendPostgres:
		pool, err := remote.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Warn("remote backend unavailable, running local only", zap.Error(err))
			return nil, nil
		}
		backend := remote.NewPostgresBackend(pool)
		if err := backend.EnsureSchema(ctx); err != nil {
			logger.Warn("remote schema unavailable, running local only", zap.Error(err))
			pool.Close()
			return nil, nil
		}
		logger.Info("Successfully connected to the Database!")
		return backend, pool.Close
	case config.BackendRedis:
		client, err := remote.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("remote backend unavailable, running local only", zap.Error(err))
			return nil, nil
		}
		logger.Info("Successfully connected to redis", zap.String("addr", cfg.RedisAddr))
		return remote.NewRedisBackend(client), func() { _ = client.Close() }
	default:
		return nil, nil
	}
}

// Handler builds the HTTP router.
func (a *App) Handler() http.Handler {
	return handler.NewRouter(
		handler.NewBoardHandler(a.Service, a.Config.Users, a.Logger),
		handler.NewStreamHandler(a.Store, a.Logger),
		a.Config.CORSOrigins,
	)
}

// Close stops hydration, flushes pending saves and releases connections.
func (a *App) Close() {
	a.Service.Close()
	a.detach()
	a.pool.Stop()
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	if err := a.db.Close(); err != nil {
		a.Logger.Warn("failed to close local database", zap.Error(err))
	}
}
