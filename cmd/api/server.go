// Package api assembles the HTTP surface: dependency wiring, routing,
// middleware and server lifecycle.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

// Server is the configured HTTP server plus its optional metrics sidecar.
type Server struct {
	deps    *Dependencies
	httpSrv *http.Server
	metrics *http.Server
}

// NewServer builds the server from initialized dependencies.
func NewServer(deps *Dependencies) *Server {
	mux := http.NewServeMux()
	deps.IngestHandler.RegisterRoutes(mux)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: deps.Config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	limiter := rate.NewLimiter(
		rate.Limit(deps.Config.Server.RateLimitPerSecond),
		deps.Config.Server.RateLimitBurst,
	)

	handler := corsMiddleware.Handler(rateLimit(limiter, mux))

	srv := &Server{
		deps: deps,
		httpSrv: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", deps.Config.Server.Host, deps.Config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	if deps.Config.Metrics.Enabled {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", deps.Metrics.Handler())
		srv.metrics = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", deps.Config.Server.Host, deps.Config.Metrics.Port),
			Handler:           metricsMux,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	return srv
}

// Handler exposes the fully wired HTTP handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		s.deps.Logger.Info("http server listening", slog.String("addr", s.httpSrv.Addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	if s.metrics != nil {
		go func() {
			s.deps.Logger.Info("metrics server listening", slog.String("addr", s.metrics.Addr))
			if err := s.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	s.deps.Logger.Info("shutting down")
	var shutdownErr error
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		shutdownErr = err
	}
	if s.metrics != nil {
		if err := s.metrics.Shutdown(shutdownCtx); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}
	return shutdownErr
}

// rateLimit applies a process-wide token bucket to all requests.
func rateLimit(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
