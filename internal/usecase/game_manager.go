package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/kachuful-backend/internal/apperror"
	"github.com/rocketscienceinc/kachuful-backend/internal/entity"
)

type gameRepo interface {
	Save(ctx context.Context, snapshot entity.Snapshot) error
	Load(ctx context.Context) (entity.Snapshot, error)
	Clear(ctx context.Context) error
	MarkReset(ctx context.Context) error
	ConsumeReset(ctx context.Context) (bool, error)
}

// GameManager owns the roster, the round count and the bid matrix. Every mutation goes through it,
// is persisted as a whole snapshot and is published to subscribers.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	mu      sync.Mutex
	players []entity.Player
	rounds  int
	bids    [][]int

	subscribersMutex sync.Mutex
	subscribers      map[int]chan entity.Snapshot
	nextSubscriber   int
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,

		subscribers: make(map[int]chan entity.Snapshot),
	}
}

// Load replaces the in-memory game with the stored one. A pending reset flag wins over stored data.
func (that *GameManager) Load(ctx context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.load(ctx)
}

func (that *GameManager) load(ctx context.Context) error {
	log := that.logger.With("method", "Load")

	reset, err := that.gameRepo.ConsumeReset(ctx)
	if err != nil {
		return fmt.Errorf("failed to check reset flag: %w", err)
	}

	if reset {
		log.Info("reset flag found, starting a new game")
	}

	snapshot, err := that.gameRepo.Load(ctx)
	if errors.Is(err, apperror.ErrCorruptGame) {
		log.Warn("stored game is unreadable, starting a new game", "error", err)
		snapshot = entity.Snapshot{}
	} else if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}

	that.players = append([]entity.Player(nil), snapshot.Players...)
	that.rounds = 0
	that.bids = nil

	// replay the stored rounds so the matrix always has one row per round and one slot per player
	for i := 0; i < snapshot.Rounds; i++ {
		row := that.appendRound()
		if i < len(snapshot.RoundBids) {
			copy(row, snapshot.RoundBids[i])
		}
	}

	that.recomputeTotals()

	log.Info("game loaded", "players", len(that.players), "rounds", that.rounds)

	return that.commit(ctx)
}

// AddPlayer appends a player to the roster. Scoring history is wiped: every total goes back to zero
// and all rounds are dropped, because existing rounds have no slot for the newcomer.
func (that *GameManager) AddPlayer(ctx context.Context, name string) (entity.Player, error) {
	log := that.logger.With("method", "AddPlayer")

	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Player{}, apperror.ErrEmptyPlayerName
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	for _, player := range that.players {
		if player.Name == name {
			return entity.Player{}, fmt.Errorf("%w: %s", apperror.ErrDuplicatePlayer, name)
		}
	}

	player := entity.NewPlayer(name)
	that.players = append(that.players, player)

	for i := range that.players {
		that.players[i].TotalScore = 0
	}
	that.rounds = 0
	that.bids = nil

	log.Info("player added, scores reset", "name", name, "players", len(that.players))

	return player, that.commit(ctx)
}

// AddRound appends a round with a zero bid for every current player.
func (that *GameManager) AddRound(ctx context.Context) (entity.Round, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.appendRound()

	round := entity.NewRound(that.rounds)

	that.logger.Debug("round added", "method", "AddRound", "round", round.Index, "suit", round.Suit.String())

	return round, that.commit(ctx)
}

// ValidateBidInput strips everything but digits and minus signs from text typed into a bid cell.
func (that *GameManager) ValidateBidInput(raw string) string {
	return entity.SanitizeBid(raw)
}

// UpdateScore records a bid for a player in a 0-based round and returns the player with the new total.
// Unparseable text counts as 0.
func (that *GameManager) UpdateScore(ctx context.Context, playerIndex, roundIndex int, raw string) (entity.Player, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if playerIndex < 0 || playerIndex >= len(that.players) {
		return entity.Player{}, fmt.Errorf("%w: %d", apperror.ErrPlayerOutOfRange, playerIndex)
	}

	if roundIndex < 0 || roundIndex >= len(that.bids) {
		return entity.Player{}, fmt.Errorf("%w: %d", apperror.ErrRoundOutOfRange, roundIndex)
	}

	bid := entity.ParseBid(raw)
	that.bids[roundIndex][playerIndex] = bid
	that.players[playerIndex].TotalScore = that.bidTotal(playerIndex)

	player := that.players[playerIndex]

	that.logger.Debug("bid updated", "method", "UpdateScore",
		"player", player.Name, "round", roundIndex+1, "bid", bid, "total", player.TotalScore)

	return player, that.commit(ctx)
}

// Ranking returns the players ordered by total score, highest first, ties in join order.
func (that *GameManager) Ranking() []entity.RankEntry {
	that.mu.Lock()
	defer that.mu.Unlock()

	return entity.Rank(that.players)
}

// EndGame wipes the game once confirmed. The reset flag is written before the reload so an interrupted
// reload still starts clean next time.
func (that *GameManager) EndGame(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return apperror.ErrNotConfirmed
	}

	log := that.logger.With("method", "EndGame")

	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear game: %w", err)
	}

	that.players = nil
	that.rounds = 0
	that.bids = nil

	that.publish(that.snapshot())

	if err := that.gameRepo.MarkReset(ctx); err != nil {
		return fmt.Errorf("failed to mark reset: %w", err)
	}

	log.Info("game ended")

	return that.load(ctx)
}

// Save persists the current game as is.
func (that *GameManager) Save(ctx context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameRepo.Save(ctx, that.snapshot()); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *GameManager) Snapshot() entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot()
}

// Subscribe returns a channel that always holds the most recent snapshot after a change.
// Slow readers skip intermediate states.
func (that *GameManager) Subscribe() (int, <-chan entity.Snapshot) {
	that.subscribersMutex.Lock()
	defer that.subscribersMutex.Unlock()

	id := that.nextSubscriber
	that.nextSubscriber++

	ch := make(chan entity.Snapshot, 1)
	that.subscribers[id] = ch

	return id, ch
}

func (that *GameManager) Unsubscribe(id int) {
	that.subscribersMutex.Lock()
	defer that.subscribersMutex.Unlock()

	if ch, ok := that.subscribers[id]; ok {
		delete(that.subscribers, id)
		close(ch)
	}
}

func (that *GameManager) appendRound() []int {
	row := make([]int, len(that.players))

	that.rounds++
	that.bids = append(that.bids, row)

	return row
}

func (that *GameManager) recomputeTotals() {
	for i := range that.players {
		that.players[i].TotalScore = that.bidTotal(i)
	}
}

func (that *GameManager) bidTotal(playerIndex int) int {
	return entity.Snapshot{RoundBids: that.bids}.PlayerTotal(playerIndex)
}

// commit persists and publishes the current state. The in-memory change stands even if the write fails.
func (that *GameManager) commit(ctx context.Context) error {
	snapshot := that.snapshot()

	err := that.gameRepo.Save(ctx, snapshot)

	that.publish(snapshot)

	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *GameManager) publish(snapshot entity.Snapshot) {
	that.subscribersMutex.Lock()
	defer that.subscribersMutex.Unlock()

	for _, ch := range that.subscribers {
		select {
		case ch <- snapshot.Clone():
			continue
		default:
		}

		// drop the stale value nobody read yet
		select {
		case <-ch:
		default:
		}

		select {
		case ch <- snapshot.Clone():
		default:
		}
	}
}

func (that *GameManager) snapshot() entity.Snapshot {
	return entity.Snapshot{
		Players:   that.players,
		Rounds:    that.rounds,
		RoundBids: that.bids,
	}.Clone()
}
