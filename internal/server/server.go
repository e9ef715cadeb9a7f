package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/cache"
	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/db"
	"github.com/jonathan/ats-scorer/internal/logging"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/server/middleware"
	"github.com/jonathan/ats-scorer/internal/server/ratelimit"
)

// Store is the persistence the recalculation endpoint needs. *db.DB implements it.
type Store interface {
	GetResumeVariant(ctx context.Context, jobApplicationID, userID uuid.UUID) (*db.ResumeVariant, error)
	GetMasterResume(ctx context.Context, userID uuid.UUID) (*db.MasterResume, error)
	GetAnalysis(ctx context.Context, jobApplicationID uuid.UUID) (*db.Analysis, error)
	UpdateAnalysisScores(ctx context.Context, analysisID uuid.UUID, update db.ScoreUpdate) error
}

var _ Store = (*db.DB)(nil)

// Dependencies are the optional collaborators of a Server. Nil fields disable
// the features that need them.
type Dependencies struct {
	Logger  *zap.Logger
	Store   Store
	Cache   *cache.ScoreCache
	JWT     *config.JWTConfig
	Metrics *observability.Metrics
}

// Server represents the HTTP server
type Server struct {
	cfg         *config.Config
	logger      *zap.Logger
	store       Store
	cache       *cache.ScoreCache
	jwtService  *JWTService
	metrics     *observability.Metrics
	rateLimiter *ratelimit.Limiter
	handler     http.Handler
	httpServer  *http.Server
	closers     []func()
}

// New creates a new server instance
func New(cfg *config.Config, deps Dependencies) *Server {
	s := &Server{
		cfg:         cfg,
		logger:      logging.OrNop(deps.Logger),
		store:       deps.Store,
		cache:       deps.Cache,
		metrics:     deps.Metrics,
		rateLimiter: ratelimit.NewLimiter(ratelimit.FromConfig(cfg.RateLimit)),
	}
	if deps.JWT != nil {
		s.jwtService = NewJWTService(deps.JWT)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /score", s.handleScore)
	if s.jwtService != nil {
		auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
		mux.Handle("POST /recalculate-score", auth(http.HandlerFunc(s.handleRecalculateScore)))
	} else {
		mux.HandleFunc("POST /recalculate-score", s.handleRecalculateUnavailable)
	}
	if cfg.Metrics.Enabled && s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Open connects the configured backing services and builds a Server. Redis
// failures degrade to running without a cache; a database without a JWT
// secret is an error.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	logger = logging.OrNop(logger)
	deps := Dependencies{Logger: logger}
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.Database.URL != "" {
		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		deps.JWT = jwtConfig

		database, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		closers = append(closers, database.Close)

		if cfg.Database.Migrate {
			if err := database.Migrate(ctx); err != nil {
				closeAll()
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}
			logger.Info("database migrated")
		}
		deps.Store = database
	} else {
		logger.Warn("no database configured; /recalculate-score is disabled")
	}

	if cfg.Cache.Enabled && cfg.Redis.RedisEnabled() {
		client, err := cache.NewClient(cfg.Redis)
		if err != nil {
			closeAll()
			return nil, err
		}
		scoreCache := cache.New(client, cfg.Cache.TTL)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = scoreCache.Ping(pingCtx)
		cancel()
		if err != nil {
			logger.Warn("redis unreachable; continuing without a score cache", zap.Error(err))
			_ = scoreCache.Close()
		} else {
			deps.Cache = scoreCache
			closers = append(closers, func() { _ = scoreCache.Close() })
		}
	}

	if cfg.Metrics.Enabled {
		deps.Metrics = observability.NewMetrics()
	}

	s := New(cfg, deps)
	s.closers = closers
	return s, nil
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.Close()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// Close releases the rate limiter and any connections opened by Open.
func (s *Server) Close() {
	s.rateLimiter.Stop()
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	allowed := s.cfg.Server.AllowedOrigins
	wildcard := slices.Contains(allowed, "*")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case wildcard:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(allowed, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging adds request logging and duration metrics
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		s.metrics.ObserveRequest(r.Method, route, rec.status, elapsed)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", elapsed),
			zap.String("remote", r.RemoteAddr),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to a status code and writes it. Internal errors are
// logged and replaced with a generic message.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, validationMessage(err))
}

// decodeBody reads a size-limited JSON body into v.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &ErrValidation{Field: "body", Message: fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit)}
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; proxy headers are not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int((info.RetryAfter + time.Second - 1) / time.Second)
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Warn("rate limit exceeded",
		zap.String("client", s.extractClientID(r)),
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit),
	)

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
