package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/kachuful-backend/internal/apperror"
	"github.com/rocketscienceinc/kachuful-backend/internal/entity"
	"github.com/rocketscienceinc/kachuful-backend/internal/repository/storage"
)

const (
	KeyPlayers   = "players"
	KeyRounds    = "rounds"
	KeyRoundBids = "roundBids"
	KeyResetGame = "resetGame"

	resetFlagValue = "true"
)

type GameRepository interface {
	Save(ctx context.Context, snapshot entity.Snapshot) error
	Load(ctx context.Context) (entity.Snapshot, error)
	Clear(ctx context.Context) error
	MarkReset(ctx context.Context) error
	ConsumeReset(ctx context.Context) (bool, error)
}

// KeyValueStore is the durable string storage the game is written into.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type kvGame struct {
	store KeyValueStore
}

func NewGameRepository(store KeyValueStore) GameRepository {
	return &kvGame{
		store: store,
	}
}

// Save writes the whole snapshot. The three keys are always rewritten together.
func (that *kvGame) Save(ctx context.Context, snapshot entity.Snapshot) error {
	players := snapshot.Players
	if players == nil {
		players = []entity.Player{}
	}

	playersJSON, err := json.Marshal(players)
	if err != nil {
		return fmt.Errorf("could not marshal players: %w", err)
	}

	roundBids := snapshot.RoundBids
	if roundBids == nil {
		roundBids = [][]int{}
	}

	roundBidsJSON, err := json.Marshal(roundBids)
	if err != nil {
		return fmt.Errorf("could not marshal round bids: %w", err)
	}

	if err = that.store.Set(ctx, KeyPlayers, string(playersJSON)); err != nil {
		return fmt.Errorf("failed to save players: %w", err)
	}

	if err = that.store.Set(ctx, KeyRounds, strconv.Itoa(snapshot.Rounds)); err != nil {
		return fmt.Errorf("failed to save rounds: %w", err)
	}

	if err = that.store.Set(ctx, KeyRoundBids, string(roundBidsJSON)); err != nil {
		return fmt.Errorf("failed to save round bids: %w", err)
	}

	return nil
}

// Load reads the snapshot back. Missing keys leave the matching field at its zero value.
func (that *kvGame) Load(ctx context.Context) (entity.Snapshot, error) {
	var snapshot entity.Snapshot

	playersJSON, found, err := that.get(ctx, KeyPlayers)
	if err != nil {
		return entity.Snapshot{}, err
	}
	if found {
		if err = json.Unmarshal([]byte(playersJSON), &snapshot.Players); err != nil {
			return entity.Snapshot{}, fmt.Errorf("%w: players: %w", apperror.ErrCorruptGame, err)
		}
	}

	roundsText, found, err := that.get(ctx, KeyRounds)
	if err != nil {
		return entity.Snapshot{}, err
	}
	if found {
		rounds, err := strconv.Atoi(roundsText)
		if err != nil || rounds < 0 {
			return entity.Snapshot{}, fmt.Errorf("%w: rounds %q", apperror.ErrCorruptGame, roundsText)
		}
		snapshot.Rounds = rounds
	}

	roundBidsJSON, found, err := that.get(ctx, KeyRoundBids)
	if err != nil {
		return entity.Snapshot{}, err
	}
	if found {
		if err = json.Unmarshal([]byte(roundBidsJSON), &snapshot.RoundBids); err != nil {
			return entity.Snapshot{}, fmt.Errorf("%w: round bids: %w", apperror.ErrCorruptGame, err)
		}
	}

	return snapshot, nil
}

func (that *kvGame) Clear(ctx context.Context) error {
	for _, key := range []string{KeyPlayers, KeyRounds, KeyRoundBids} {
		if err := that.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}

	return nil
}

func (that *kvGame) MarkReset(ctx context.Context) error {
	if err := that.store.Set(ctx, KeyResetGame, resetFlagValue); err != nil {
		return fmt.Errorf("failed to set reset flag: %w", err)
	}

	return nil
}

// ConsumeReset reports whether the reset flag was set. When it was, the stored game and the flag are removed.
func (that *kvGame) ConsumeReset(ctx context.Context) (bool, error) {
	flag, found, err := that.get(ctx, KeyResetGame)
	if err != nil {
		return false, err
	}

	if !found || flag != resetFlagValue {
		return false, nil
	}

	if err = that.Clear(ctx); err != nil {
		return false, err
	}

	if err = that.store.Delete(ctx, KeyResetGame); err != nil {
		return false, fmt.Errorf("failed to clear reset flag: %w", err)
	}

	return true, nil
}

func (that *kvGame) get(ctx context.Context, key string) (string, bool, error) {
	value, err := that.store.Get(ctx, key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, true, nil
}
