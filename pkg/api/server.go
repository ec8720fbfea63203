package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/cuemby/cookshow/pkg/log"
	"github.com/cuemby/cookshow/pkg/metrics"
	"github.com/cuemby/cookshow/pkg/service"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Config holds HTTP server settings
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// RateLimit is the sustained requests per second across all API routes
	RateLimit      float64
	RateLimitBurst int
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		RateLimit:       100,
		RateLimitBurst:  200,
	}
}

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping() error
}

// Server is the cookshow REST API
type Server struct {
	config      Config
	services    *service.Services
	rateLimiter *rate.Limiter
	handler     http.Handler
	httpServer  *http.Server
	logger      zerolog.Logger
}

// NewServer builds the API over services. store backs the /ready check.
func NewServer(cfg Config, services *service.Services, store Pinger) *Server {
	s := &Server{
		config:      cfg,
		services:    services,
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst),
		logger:      log.WithComponent("api"),
	}
	if store != nil {
		metrics.RegisterCheck("storage", store.Ping)
	}

	s.handler = s.setupRoutes()
	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Handler returns the root handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.handler
}

// SetReady reports the API component to the readiness registry
func (s *Server) SetReady(ready bool) {
	if ready {
		metrics.UpdateComponent("api", true, "")
	} else {
		metrics.UpdateComponent("api", false, "shutting down")
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve is Start on an existing listener
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.SetReady(true)
	s.logger.Info().Str("addr", lis.Addr().String()).Msg("API server listening")

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errCh:
		s.SetReady(false)
		return err
	}
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	s.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.logger.Info().Msg("Shutting down API server")
	return s.httpServer.Shutdown(shutdownCtx)
}
