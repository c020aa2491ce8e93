package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/kachuful-backend/internal/apperror"
	"github.com/rocketscienceinc/kachuful-backend/internal/entity"
	"github.com/rocketscienceinc/kachuful-backend/internal/render"
)

const uniqueNameMessage = "Please enter a unique player name."

type gameManager interface {
	AddPlayer(ctx context.Context, name string) (entity.Player, error)
	AddRound(ctx context.Context) (entity.Round, error)
	ValidateBidInput(raw string) string
	UpdateScore(ctx context.Context, playerIndex, roundIndex int, raw string) (entity.Player, error)
	Ranking() []entity.RankEntry
	EndGame(ctx context.Context, confirmed bool) error
	Save(ctx context.Context) error
	Snapshot() entity.Snapshot
}

type handlers struct {
	logger     *slog.Logger
	game       gameManager
	socketPort string
}

type playerRequest struct {
	Name string `json:"name"`
}

type bidRequest struct {
	Bid string `json:"bid"`
}

type endGameRequest struct {
	Confirm bool `json:"confirm"`
}

type roundResponse struct {
	Index  int    `json:"index"`
	Suit   string `json:"suit"`
	Symbol string `json:"symbol"`
	Class  string `json:"class"`
}

type stateResponse struct {
	entity.Snapshot
	Ranking []entity.RankEntry `json:"ranking"`
}

type rankingResponse struct {
	Ranking []entity.RankEntry `json:"ranking"`
	Lines   []string           `json:"lines"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newHandlers(logger *slog.Logger, game gameManager, socketPort string) *handlers {
	return &handlers{
		logger:     logger.With("component", "rest_handlers"),
		game:       game,
		socketPort: socketPort,
	}
}

func (that *handlers) page(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := render.Page(w, render.Build(that.game.Snapshot()), that.socketPort); err != nil {
		that.logger.Error("failed to render page", "error", err)
	}
}

func (that *handlers) state(w http.ResponseWriter, _ *http.Request) {
	snapshot := that.game.Snapshot()

	that.writeJSON(w, http.StatusOK, stateResponse{
		Snapshot: snapshot,
		Ranking:  entity.Rank(snapshot.Players),
	})
}

func (that *handlers) ranking(w http.ResponseWriter, _ *http.Request) {
	ranking := that.game.Ranking()

	lines := make([]string, 0, len(ranking))
	for _, entry := range ranking {
		lines = append(lines, entry.String())
	}

	that.writeJSON(w, http.StatusOK, rankingResponse{Ranking: ranking, Lines: lines})
}

func (that *handlers) addPlayer(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	player, err := that.game.AddPlayer(r.Context(), req.Name)
	if errors.Is(err, apperror.ErrEmptyPlayerName) || errors.Is(err, apperror.ErrDuplicatePlayer) {
		that.writeError(w, http.StatusBadRequest, uniqueNameMessage)
		return
	}

	if err != nil {
		that.internalError(w, "AddPlayer", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, player)
}

func (that *handlers) addRound(w http.ResponseWriter, r *http.Request) {
	round, err := that.game.AddRound(r.Context())
	if err != nil {
		that.internalError(w, "AddRound", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, roundResponse{
		Index:  round.Index,
		Suit:   round.Suit.String(),
		Symbol: round.Suit.Symbol(),
		Class:  round.Suit.Class(),
	})
}

// updateBid takes the round as shown on the page (1-based) and the player's roster position (0-based).
func (that *handlers) updateBid(w http.ResponseWriter, r *http.Request) {
	round, err := strconv.Atoi(chi.URLParam(r, "round"))
	if err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid round")
		return
	}

	playerIndex, err := strconv.Atoi(chi.URLParam(r, "player"))
	if err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid player")
		return
	}

	var req bidRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	player, err := that.game.UpdateScore(r.Context(), playerIndex, round-1, req.Bid)
	if errors.Is(err, apperror.ErrPlayerOutOfRange) || errors.Is(err, apperror.ErrRoundOutOfRange) {
		that.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	if err != nil {
		that.internalError(w, "UpdateScore", err)
		return
	}

	that.writeJSON(w, http.StatusOK, player)
}

func (that *handlers) sanitizeBid(w http.ResponseWriter, r *http.Request) {
	var req bidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	that.writeJSON(w, http.StatusOK, bidRequest{Bid: that.game.ValidateBidInput(req.Bid)})
}

func (that *handlers) endGame(w http.ResponseWriter, r *http.Request) {
	var req endGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := that.game.EndGame(r.Context(), req.Confirm)
	if errors.Is(err, apperror.ErrNotConfirmed) {
		that.writeError(w, http.StatusConflict, err.Error())
		return
	}

	if err != nil {
		that.internalError(w, "EndGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) save(w http.ResponseWriter, r *http.Request) {
	if err := that.game.Save(r.Context()); err != nil {
		that.internalError(w, "Save", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) internalError(w http.ResponseWriter, method string, err error) {
	that.logger.Error("request failed", "method", method, "error", err)
	that.writeError(w, http.StatusInternalServerError, "Internal Server Error")
}

func (that *handlers) writeError(w http.ResponseWriter, status int, message string) {
	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
