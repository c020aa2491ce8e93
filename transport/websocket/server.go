package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/rocketscienceinc/kachuful-backend/internal/entity"
)

const (
	writeTimeout    = 3 * time.Second
	shutdownTimeout = 5 * time.Second
)

type gameFeed interface {
	Snapshot() entity.Snapshot
	Subscribe() (int, <-chan entity.Snapshot)
	Unsubscribe(id int)
}

// Server pushes a fresh view to every open page whenever the game changes.
type Server struct {
	logger         *slog.Logger
	game           gameFeed
	originPatterns []string
}

func New(logger *slog.Logger, game gameFeed, originPatterns []string) *Server {
	return &Server{
		logger:         logger.With("component", "websocket"),
		game:           game,
		originPatterns: originPatterns,
	}
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", that)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
		// ReadTimeout would stay on the hijacked connection
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: that.originPatterns,
	})
	if err != nil {
		log.Error("failed to accept connection", "error", err)
		return
	}
	defer conn.CloseNow()

	id, updates := that.game.Subscribe()
	defer that.game.Unsubscribe(id)

	log.Info("WebSocket connection established", "subscriber", id)

	// the page never sends anything, reading only watches for the close frame
	ctx := conn.CloseRead(r.Context())

	if err = that.send(ctx, conn, that.game.Snapshot()); err != nil {
		log.Error("failed to send state", "error", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("WebSocket connection closed", "subscriber", id)
			return
		case snapshot, ok := <-updates:
			if !ok {
				_ = conn.Close(websocket.StatusGoingAway, "unsubscribed")
				return
			}

			if err = that.send(ctx, conn, snapshot); err != nil {
				log.Error("failed to send state", "error", err)
				return
			}
		}
	}
}

func (that *Server) send(ctx context.Context, conn *websocket.Conn, snapshot entity.Snapshot) error {
	message, err := newStateMessage(snapshot)
	if err != nil {
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err = conn.Write(writeCtx, websocket.MessageText, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
