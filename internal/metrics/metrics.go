// Package metrics exposes Prometheus counters for the SSH game server.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "invaders"

// Metrics holds the server's collectors. A nil *Metrics is valid and
// records nothing, so callers never need to check whether metrics are on.
type Metrics struct {
	registry *prometheus.Registry

	sessions        prometheus.Counter
	activeSessions  prometheus.Gauge
	runsStarted     *prometheus.CounterVec
	runsFinished    *prometheus.CounterVec
	aliensDestroyed *prometheus.CounterVec
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "SSH sessions opened.",
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "SSH sessions currently connected.",
		}),
		runsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_started_total",
			Help:      "Games started, by variant.",
		}, []string{"game"}),
		runsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_finished_total",
			Help:      "Games that reached game over, by variant.",
		}, []string{"game"}),
		aliensDestroyed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aliens_destroyed_total",
			Help:      "Aliens shot down in finished games, by variant.",
		}, []string{"game"}),
	}

	m.registry.MustRegister(m.sessions, m.activeSessions, m.runsStarted, m.runsFinished, m.aliensDestroyed)
	return m
}

// SessionStarted records a new connection.
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessions.Inc()
	m.activeSessions.Inc()
}

// SessionEnded records a closed connection.
func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

// RunStarted records a game start.
func (m *Metrics) RunStarted(game string) {
	if m == nil {
		return
	}
	m.runsStarted.WithLabelValues(game).Inc()
}

// RunFinished records a finished game and the aliens it destroyed.
func (m *Metrics) RunFinished(game string, aliensShot int) {
	if m == nil {
		return
	}
	m.runsFinished.WithLabelValues(game).Inc()
	if aliensShot > 0 {
		m.aliensDestroyed.WithLabelValues(game).Add(float64(aliensShot))
	}
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve runs the metrics endpoint until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("metrics endpoint listening", "address", addr, "path", "/metrics")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
