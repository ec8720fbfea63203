package api

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// HealthServer serves /health, /ready and /metrics on their own listener,
// so probes and scrapes keep working when the API is saturated
type HealthServer struct {
	mux    *http.ServeMux
	server *http.Server
}

// NewHealthServer creates the system endpoint server for addr
func NewHealthServer(addr string) *HealthServer {
	mux := http.NewServeMux()
	registerSystemRoutes(mux)

	return &HealthServer{
		mux: mux,
		server: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start serves until ctx is cancelled
func (hs *HealthServer) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := hs.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// GetHandler returns the HTTP handler for embedding in other servers
func (hs *HealthServer) GetHandler() http.Handler {
	return hs.mux
}
