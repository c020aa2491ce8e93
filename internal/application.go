package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/kachuful-backend/internal/config"
	"github.com/rocketscienceinc/kachuful-backend/internal/repository"
	"github.com/rocketscienceinc/kachuful-backend/internal/repository/storage"
	"github.com/rocketscienceinc/kachuful-backend/internal/usecase"
	"github.com/rocketscienceinc/kachuful-backend/transport/rest"
	"github.com/rocketscienceinc/kachuful-backend/transport/websocket"
)

const finalSaveTimeout = 5 * time.Second

var (
	ErrAddrNotFound      = errors.New("redis address string is empty")
	ErrDSNNotFound       = errors.New("postgres dsn is empty")
	ErrUnknownStorage    = errors.New("unknown storage driver")
	ErrSQLitePathMissing = errors.New("sqlite storage path is empty")
)

type store interface {
	repository.KeyValueStore
	Close() error
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	kvStore, err := openStorage(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open %s storage: %w", conf.Storage.Driver, err)
	}

	defer func() {
		if err = kvStore.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	log.Info("Storage opened", "driver", conf.Storage.Driver)

	gameRepo := repository.NewGameRepository(kvStore)
	gameManager := usecase.NewGameManager(logger, gameRepo)

	if err = gameManager.Load(ctx); err != nil {
		return fmt.Errorf("could not load game: %w", err)
	}

	// state may have changed after the last successful write, so save once more on the way out
	defer func() {
		saveCtx, saveCancel := context.WithTimeout(context.Background(), finalSaveTimeout)
		defer saveCancel()

		if err := gameManager.Save(saveCtx); err != nil {
			log.Error("could not save game on shutdown", "error", err)
		}
	}()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpServer := rest.New(logger, gameManager, conf.SocketPort)
		if httpErr := httpServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager, conf.SocketOrigins)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func openStorage(ctx context.Context, conf *config.Config) (store, error) {
	switch conf.Storage.Driver {
	case config.DriverMemory:
		return storage.NewMemoryStorage(), nil

	case config.DriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return nil, ErrAddrNotFound
		}

		return storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.KeyPrefix)

	case config.DriverSQLite:
		if conf.SQLiteStoragePath == "" {
			return nil, ErrSQLitePathMissing
		}

		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return nil, err
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			return nil, err
		}

		return sqliteStorage, nil

	case config.DriverPostgres:
		if conf.Postgres.DSN == "" {
			return nil, ErrDSNNotFound
		}

		postgresStorage, err := storage.NewPostgresStorage(conf.Postgres.DSN)
		if err != nil {
			return nil, err
		}

		if err = postgresStorage.Init(ctx); err != nil {
			return nil, err
		}

		return postgresStorage, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Storage.Driver)
	}
}
