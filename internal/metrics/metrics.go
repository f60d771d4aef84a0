// Package metrics exposes Prometheus instruments for game sessions and the
// HTTP API. Label values are bounded: no per-player or per-IP labels.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-arena/internal/core"
)

var (
	ticksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_ticks_total",
		Help: "Physics ticks simulated across all sessions",
	})

	collisionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_collisions_total",
		Help: "Collision events emitted",
	})

	spawnedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_enemies_spawned_total",
		Help: "Enemies spawned",
	})

	enemiesAlive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "arena_enemies_alive",
		Help: "Enemies alive in the most recently updated session",
	})

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "arena_sessions_active",
		Help: "Game sessions currently running",
	})

	frameDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "arena_frame_duration_seconds",
		Help:    "Time spent updating the simulation for one rendered frame",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025},
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arena_http_requests_total",
		Help: "HTTP API requests",
	}, []string{"method", "route", "status"}) // route is the pattern, not the URL
)

// RecordFrame records what one frame update did and how long it took.
func RecordFrame(res core.StepResult, took time.Duration) {
	ticksTotal.Add(float64(res.Ticks))
	collisionsTotal.Add(float64(res.Collisions))
	spawnedTotal.Add(float64(res.Spawned))
	enemiesAlive.Set(float64(res.State.Enemies))
	frameDuration.Observe(took.Seconds())
}

// SessionStarted increments the active session gauge.
func SessionStarted() {
	sessionsActive.Inc()
}

// SessionEnded decrements the active session gauge.
func SessionEnded() {
	sessionsActive.Dec()
}

// RecordRequest counts one HTTP request.
func RecordRequest(method, route string, status int) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
