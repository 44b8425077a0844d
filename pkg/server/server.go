package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/netsnap/netsnap/pkg/defaults"
)

// Server is the netsnap agent HTTP server.
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	snapshotter Snapshotter
	mu          sync.RWMutex
	ready       bool
}

// NewServer creates a server exposing the given snapshotter.
func NewServer(config *Config, snap Snapshotter) *Server {
	if config == nil {
		config = NewConfig()
	}

	s := &Server{
		config:      config,
		rateLimiter: rate.NewLimiter(config.RateLimit, config.RateLimitBurst),
		snapshotter: snap,
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Address, config.Port),
		Handler:           s.setupRoutes(),
		ReadTimeout:       config.ReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      config.WriteTimeout,
		IdleTimeout:       config.IdleTimeout,
	}

	return s
}

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	// API endpoints with middleware
	mux.HandleFunc("/v1/snapshot", s.withMiddleware(s.handleSnapshot))

	return mux
}

// SetReady marks the server as ready to serve traffic
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Start starts the HTTP server and blocks until the context is
// cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.SetReady(true)

	slog.Info("starting server", slog.String("address", s.httpServer.Addr))

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	return s.httpServer.Shutdown(shutdownCtx)
}

// RunWithConfig starts the server and blocks until SIGINT/SIGTERM.
func RunWithConfig(config *Config, snap Snapshotter) error {
	server := NewServer(config, snap)

	slog.Info("server config",
		slog.String("name", server.config.Name),
		slog.String("version", server.config.Version),
		slog.String("address", server.httpServer.Addr),
		slog.Any("rateLimit", server.config.RateLimit),
		slog.Int("rateLimitBurst", server.config.RateLimitBurst),
		slog.Duration("readTimeout", server.config.ReadTimeout),
		slog.Duration("writeTimeout", server.config.WriteTimeout),
		slog.Duration("idleTimeout", server.config.IdleTimeout),
		slog.Duration("shutdownTimeout", server.config.ShutdownTimeout),
		slog.Duration("snapshotTimeout", server.config.SnapshotTimeout),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
