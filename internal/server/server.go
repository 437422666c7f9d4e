package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/gobend/internal/config"
	"github.com/alexiusacademia/gobend/internal/engine"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the analysis engine over HTTP
type Server struct {
	eng     *engine.Engine
	logger  *zap.SugaredLogger
	limiter *IPRateLimiter
	Server  http.Server
}

// New creates a server for eng. A zero rate limit disables limiting.
func New(eng *engine.Engine, cfg config.ServerConfig, logger *zap.SugaredLogger) *Server {
	s := &Server{
		eng:    eng,
		logger: logger,
	}
	if cfg.RateLimit > 0 {
		s.limiter = NewIPRateLimiter(rate.Limit(cfg.RateLimit), max(cfg.Burst, 1))
	}
	s.Server.Addr = cfg.Addr
	s.Server.Handler = s.Router()
	s.Server.ReadHeaderTimeout = 10 * time.Second
	return s
}

// Router builds the route table
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.requestLogger)

	api := router.PathPrefix("/api").Subrouter()
	if s.limiter != nil {
		api.Use(s.limiter.LimitMiddleware)
	}
	api.HandleFunc("/analyze", s.analyze).Methods(http.MethodPost)
	api.HandleFunc("/materials", s.materials).Methods(http.MethodGet)
	api.HandleFunc("/health", s.health).Methods(http.MethodGet)
	return router
}

// ListenAndServe serves until ctx is cancelled, then drains open connections
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if s.limiter != nil {
		go s.limiter.Run(ctx, limiterSweep, limiterTTL)
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Infow("starting HTTP API", "addr", ln.Addr().String())
		if err := s.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutdown signal received, closing active connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errc
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestLogger tags every request with an ID and logs its outcome
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-ID", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		s.logger.Infow("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote", clientIP(r),
			"duration", time.Since(start),
		)
	})
}
