package application

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/kachuful-backend/internal/config"
	"github.com/rocketscienceinc/kachuful-backend/internal/repository/storage"
)

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		kvStore, err := openStorage(ctx, &config.Config{Storage: config.Storage{Driver: config.DriverMemory}})

		require.NoError(t, err)
		assert.IsType(t, &storage.MemoryStorage{}, kvStore)
	})

	t.Run("SQLite creates its table", func(t *testing.T) {
		// Given: a sqlite config pointing into a temp dir
		conf := &config.Config{
			Storage:           config.Storage{Driver: config.DriverSQLite},
			SQLiteStoragePath: filepath.Join(t.TempDir(), "kachuful.db"),
		}

		// When: the storage is opened
		kvStore, err := openStorage(ctx, conf)
		require.NoError(t, err)
		t.Cleanup(func() { _ = kvStore.Close() })

		// Then: it is ready for writes
		require.NoError(t, kvStore.Set(ctx, "rounds", "1"))
	})

	t.Run("Missing settings", func(t *testing.T) {
		_, err := openStorage(ctx, &config.Config{Storage: config.Storage{Driver: config.DriverPostgres}})
		require.ErrorIs(t, err, ErrDSNNotFound)

		_, err = openStorage(ctx, &config.Config{Storage: config.Storage{Driver: config.DriverSQLite}})
		require.ErrorIs(t, err, ErrSQLitePathMissing)

		_, err = openStorage(ctx, &config.Config{Storage: config.Storage{Driver: config.DriverRedis}})
		require.ErrorIs(t, err, ErrAddrNotFound)
	})

	t.Run("Unknown driver", func(t *testing.T) {
		_, err := openStorage(ctx, &config.Config{Storage: config.Storage{Driver: "etcd"}})

		require.ErrorIs(t, err, ErrUnknownStorage)
	})
}
