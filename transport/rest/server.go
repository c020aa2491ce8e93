package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger   *slog.Logger
	handlers *handlers
}

func New(logger *slog.Logger, game gameManager, socketPort string) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		handlers: newHandlers(logger, game, socketPort),
	}
}

// Routes - builds the router for the page and the JSON API.
func (that *Server) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/ping", pingHandler)
	router.Get("/", that.handlers.page)

	router.Route("/api", func(r chi.Router) {
		r.Get("/state", that.handlers.state)
		r.Get("/ranking", that.handlers.ranking)
		r.Post("/players", that.handlers.addPlayer)
		r.Post("/rounds", that.handlers.addRound)
		r.Put("/rounds/{round}/bids/{player}", that.handlers.updateBid)
		r.Post("/bids/sanitize", that.handlers.sanitizeBid)
		r.Post("/game/end", that.handlers.endGame)
		r.Post("/save", that.handlers.save)
	})

	return router
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
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
