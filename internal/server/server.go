// Package server wires the reference posts API: storage, handlers and middleware.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/quotesync/internal/server/handlers"
	"github.com/iudanet/quotesync/internal/server/middleware"
	"github.com/iudanet/quotesync/internal/server/storage"
)

// Config содержит параметры HTTP сервера
type Config struct {
	JWT             handlers.JWTConfig
	Addr            string
	Version         string
	RateLimit       int
	RateWindow      time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Database объединяет хранилище постов и проверку доступности
type Database interface {
	storage.PostStorage
	handlers.Pinger
}

// Server serves the posts API
type Server struct {
	logger  *slog.Logger
	limiter *middleware.RateLimiter
	http    *http.Server
	cfg     Config
}

// New creates a server; call Run to start listening
func New(cfg Config, db Database, logger *slog.Logger) *Server {
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	s := &Server{
		logger:  logger,
		limiter: limiter,
		cfg:     cfg,
	}

	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.routes(db),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) routes(db Database) http.Handler {
	posts := handlers.NewPostsHandler(s.logger, db)
	health := handlers.NewHealthHandler(s.logger, db, s.cfg.Version)
	requireAuth := middleware.AuthMiddleware(s.logger, s.cfg.JWT)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /posts", posts.List)
	mux.HandleFunc("GET /posts/{id}", posts.Get)
	mux.Handle("POST /posts", requireAuth(http.HandlerFunc(posts.Create)))

	// Порядок: request id и лог снаружи, затем recovery, затем лимит
	var h http.Handler = mux
	h = s.limiter.Middleware(s.logger)(h)
	h = middleware.RecoveryMiddleware(s.logger)(h)
	h = middleware.LoggingMiddleware(s.logger, "/health")(h)

	return h
}

// Run слушает адрес до отмены ctx, затем корректно завершает соединения
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на готовом listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.limiter.Stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Server listening", "addr", ln.Addr().String(), "auth", s.cfg.JWT.Enabled())
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()

		s.logger.Info("Shutting down server")
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
