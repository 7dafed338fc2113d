// Package web serves a read-only local viewer for plans and activity.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/seqplan/seqplan/internal/config"
	"github.com/seqplan/seqplan/internal/web/handler"
	"github.com/seqplan/seqplan/internal/web/middleware"
	"github.com/seqplan/seqplan/internal/web/sse"
)

// Server is the web viewer server for seqplan.
type Server struct {
	cfg    *config.Config
	port   int
	broker *sse.Broker
	srv    *http.Server
}

// NewServer creates a new web server.
func NewServer(cfg *config.Config, port int) *Server {
	return &Server{
		cfg:  cfg,
		port: port,
	}
}

// ListenAndServe starts the server and blocks until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	eventsDir, err := s.cfg.EventsDir()
	if err != nil {
		return fmt.Errorf("get events dir: %w", err)
	}

	plansDir, err := s.cfg.PlansDir()
	if err != nil {
		return fmt.Errorf("get plans dir: %w", err)
	}

	// Start SSE broker and file watcher.
	s.broker = sse.NewBroker()
	watcher, err := sse.NewWatcher(eventsDir, s.broker)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	h := handler.New(plansDir, eventsDir, s.broker)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Plans)
	mux.HandleFunc("GET /plan/{id}", h.Plan)
	mux.HandleFunc("GET /activity", h.Activity)
	mux.HandleFunc("GET /events", h.Events)

	s.srv = &http.Server{
		Addr: fmt.Sprintf(":%d", s.port),
		Handler: middleware.Chain(mux,
			middleware.CORS(),
			middleware.RateLimit(ctx, middleware.DefaultRateLimitConfig()),
		),
		ReadTimeout: 5 * time.Second,
		// WriteTimeout is deliberately unset (0 = no timeout) because SSE
		// connections are long-lived. A per-handler write timeout would
		// kill the /events stream and trigger aggressive browser reconnects.
		IdleTimeout: 120 * time.Second,
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		slog.Info("shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(shutdownCtx)
	}()

	slog.Info("listening", "addr", fmt.Sprintf("http://localhost:%d", s.port))
	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
