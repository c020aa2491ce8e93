package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/rocketscienceinc/kachuful-backend/internal/apperror"
	"github.com/rocketscienceinc/kachuful-backend/internal/entity"
	"github.com/rocketscienceinc/kachuful-backend/internal/repository/storage"
	"github.com/rocketscienceinc/kachuful-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store down")

type failingStore struct {
	*storage.MemoryStorage
	failKey string
}

func (that *failingStore) Set(ctx context.Context, key, value string) error {
	if key == that.failKey {
		return errStoreDown
	}

	return that.MemoryStorage.Set(ctx, key, value)
}

func (that *failingStore) Get(ctx context.Context, key string) (string, error) {
	if key == that.failKey {
		return "", errStoreDown
	}

	return that.MemoryStorage.Get(ctx, key)
}

func sampleSnapshot() entity.Snapshot {
	return entity.Snapshot{
		Players: []entity.Player{
			{Name: "Asha", TotalScore: 6},
			{Name: "Ravi", TotalScore: -1},
		},
		Rounds:    3,
		RoundBids: [][]int{{3, 0}, {-2, -1}, {5, 0}},
	}
}

func TestGameRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes the browser storage layout", func(t *testing.T) {
		// Given: an empty store
		store := storage.NewMemoryStorage()
		gameRepo := NewGameRepository(store)

		// When: a snapshot is saved
		err := gameRepo.Save(ctx, sampleSnapshot())
		require.NoError(t, err)

		// Then: every key holds its string encoding
		players, err := store.Get(ctx, KeyPlayers)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"name":"Asha","totalScore":6},{"name":"Ravi","totalScore":-1}]`, players)

		rounds, err := store.Get(ctx, KeyRounds)
		require.NoError(t, err)
		assert.Equal(t, "3", rounds)

		roundBids, err := store.Get(ctx, KeyRoundBids)
		require.NoError(t, err)
		assert.JSONEq(t, `[[3,0],[-2,-1],[5,0]]`, roundBids)
	})

	t.Run("Empty snapshot is written as empty arrays", func(t *testing.T) {
		store := storage.NewMemoryStorage()
		gameRepo := NewGameRepository(store)

		require.NoError(t, gameRepo.Save(ctx, entity.Snapshot{}))

		players, err := store.Get(ctx, KeyPlayers)
		require.NoError(t, err)
		assert.Equal(t, "[]", players)

		roundBids, err := store.Get(ctx, KeyRoundBids)
		require.NoError(t, err)
		assert.Equal(t, "[]", roundBids)
	})

	t.Run("Store failure is wrapped", func(t *testing.T) {
		// Given: a store that cannot write rounds
		gameRepo := NewGameRepository(&failingStore{MemoryStorage: storage.NewMemoryStorage(), failKey: KeyRounds})

		// When: the snapshot is saved
		err := gameRepo.Save(ctx, sampleSnapshot())

		// Then: the underlying error is preserved
		require.ErrorIs(t, err, errStoreDown)
	})
}

func TestGameRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip", func(t *testing.T) {
		// Given: a saved snapshot
		gameRepo := NewGameRepository(storage.NewMemoryStorage())
		require.NoError(t, gameRepo.Save(ctx, sampleSnapshot()))

		// When: it is loaded
		snapshot, err := gameRepo.Load(ctx)

		// Then: the same state comes back
		require.NoError(t, err)
		assert.Equal(t, sampleSnapshot(), snapshot)
	})

	t.Run("Missing keys give an empty game", func(t *testing.T) {
		gameRepo := NewGameRepository(storage.NewMemoryStorage())

		snapshot, err := gameRepo.Load(ctx)

		require.NoError(t, err)
		assert.True(t, snapshot.IsEmpty())
	})

	t.Run("Corrupt players", func(t *testing.T) {
		store := storage.NewMemoryStorage()
		require.NoError(t, store.Set(ctx, KeyPlayers, "{not json"))

		_, err := NewGameRepository(store).Load(ctx)

		require.ErrorIs(t, err, apperror.ErrCorruptGame)
	})

	t.Run("Corrupt rounds", func(t *testing.T) {
		store := storage.NewMemoryStorage()
		require.NoError(t, store.Set(ctx, KeyRounds, "-2"))

		_, err := NewGameRepository(store).Load(ctx)

		require.ErrorIs(t, err, apperror.ErrCorruptGame)
	})

	t.Run("Store failure is wrapped", func(t *testing.T) {
		gameRepo := NewGameRepository(&failingStore{MemoryStorage: storage.NewMemoryStorage(), failKey: KeyRoundBids})

		_, err := gameRepo.Load(ctx)

		require.ErrorIs(t, err, errStoreDown)
	})
}

func TestGameRepository_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("ConsumeReset without flag keeps the game", func(t *testing.T) {
		// Given: a saved game and no flag
		gameRepo := NewGameRepository(storage.NewMemoryStorage())
		require.NoError(t, gameRepo.Save(ctx, sampleSnapshot()))

		// When: the flag is consumed
		reset, err := gameRepo.ConsumeReset(ctx)

		// Then: nothing happens
		require.NoError(t, err)
		assert.False(t, reset)

		snapshot, err := gameRepo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, sampleSnapshot(), snapshot)
	})

	t.Run("ConsumeReset with flag wipes the game once", func(t *testing.T) {
		// Given: a saved game with the reset flag set
		store := storage.NewMemoryStorage()
		gameRepo := NewGameRepository(store)
		require.NoError(t, gameRepo.Save(ctx, sampleSnapshot()))
		require.NoError(t, gameRepo.MarkReset(ctx))

		// When: the flag is consumed
		reset, err := gameRepo.ConsumeReset(ctx)

		// Then: the game and the flag are gone
		require.NoError(t, err)
		assert.True(t, reset)

		_, err = store.Get(ctx, KeyResetGame)
		require.ErrorIs(t, err, storage.ErrKeyNotFound)

		snapshot, err := gameRepo.Load(ctx)
		require.NoError(t, err)
		assert.True(t, snapshot.IsEmpty())

		// And: a second call reports no reset
		reset, err = gameRepo.ConsumeReset(ctx)
		require.NoError(t, err)
		assert.False(t, reset)
	})
}

func TestGameRepository_Redis(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(storage.NewRedisStorageFromClient(st.Storage, "kachuful"))

	// Given: a saved snapshot
	err := gameRepo.Save(ctx, sampleSnapshot())
	require.NoError(t, err)

	// When: it is loaded from redis
	snapshot, err := gameRepo.Load(ctx)

	// Then: the state matches
	require.NoError(t, err)
	require.Equal(t, sampleSnapshot(), snapshot)

	// When: the game is reset
	require.NoError(t, gameRepo.MarkReset(ctx))
	reset, err := gameRepo.ConsumeReset(ctx)

	// Then: the next load is empty
	require.NoError(t, err)
	assert.True(t, reset)

	snapshot, err = gameRepo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, snapshot.IsEmpty())
}
