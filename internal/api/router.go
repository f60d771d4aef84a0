// Package api serves the read-only HTTP leaderboard, health check and
// Prometheus metrics next to the SSH game server.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vovakirdan/tui-arena/internal/metrics"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

// ScoreSource is the subset of the score store the API reads.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	BestScore(gameID string) (*storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// RouterConfig holds the router dependencies.
type RouterConfig struct {
	// Scores backs the leaderboard routes. Nil makes them answer 503.
	Scores ScoreSource

	// GameID selects which game's scores are served.
	GameID string

	// RateLimiter throttles requests per client IP. Required; the caller
	// owns it and stops it once the server is shut down.
	RateLimiter *IPRateLimiter

	// TrustProxy takes the client IP from X-Forwarded-For, X-Real-IP or
	// True-Client-IP. Enable it only behind a proxy that sets those headers,
	// otherwise clients can pick their own rate limit bucket.
	TrustProxy bool

	// CORSOrigins overrides the allowed origins. Nil allows localhost only.
	CORSOrigins []string
}

// ErrNoRateLimiter is returned by NewRouter when RouterConfig.RateLimiter is nil.
var ErrNoRateLimiter = errors.New("api: router needs a rate limiter")

// NewRouter builds the HTTP handler. It starts no listeners or goroutines,
// so it can be served by httptest directly.
func NewRouter(cfg RouterConfig) (*chi.Mux, error) {
	if cfg.RateLimiter == nil {
		return nil, ErrNoRateLimiter
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer)
	r.Use(recordRequests)

	// Rate limiting before CORS rejects floods early
	r.Use(cfg.RateLimiter.Middleware)

	origins := cfg.CORSOrigins
	if origins == nil {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(middleware.Timeout(10 * time.Second))

	h := &handlers{scores: cfg.Scores, gameID: cfg.GameID}

	r.Get("/healthz", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/scores", h.handleTopScores)
		r.Get("/scores/best", h.handleBestScore)
		r.Get("/stats", h.handleStats)
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r, nil
}

// recordRequests counts every request by route pattern and status.
func recordRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordRequest(r.Method, route, status)
	})
}
