package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus metric descriptors for the game server.
type Metrics struct {
	game      *Game
	registry  *prometheus.Registry
	startTime time.Time

	sessionsConnected *prometheus.GaugeVec
	connectionsTotal  *prometheus.CounterVec
	commandsTotal     prometheus.Counter
	soulActionsTotal  prometheus.Counter
	parseErrorsTotal  prometheus.Counter
	unknownVerbsTotal prometheus.Counter
	customSocials     prometheus.Gauge
	uptimeSeconds     prometheus.Gauge
	memoryHeapBytes   prometheus.Gauge
	goroutines        prometheus.Gauge
}

// NewMetrics creates and registers Prometheus metrics for the game. Each
// Metrics carries its own registry so repeated construction is safe.
func NewMetrics(game *Game, startTime time.Time) *Metrics {
	m := &Metrics{
		game:      game,
		registry:  prometheus.NewRegistry(),
		startTime: startTime,
		sessionsConnected: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gosoul_sessions_connected",
			Help: "Number of currently connected sessions by transport.",
		}, []string{"transport"}),
		connectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gosoul_connections_total",
			Help: "Total connections since server start.",
		}, []string{"transport"}),
		commandsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gosoul_commands_processed_total",
			Help: "Total commands processed since server start.",
		}),
		soulActionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gosoul_soul_actions_total",
			Help: "Total soul actions rendered and emitted.",
		}),
		parseErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gosoul_parse_errors_total",
			Help: "Total commands rejected by the parser.",
		}),
		unknownVerbsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gosoul_unknown_verbs_total",
			Help: "Total commands with an unrecognized verb.",
		}),
		customSocials: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gosoul_custom_socials",
			Help: "Number of loaded custom social verbs.",
		}),
		uptimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gosoul_uptime_seconds",
			Help: "Server uptime in seconds.",
		}),
		memoryHeapBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gosoul_memory_heap_bytes",
			Help: "Go heap memory allocated in bytes.",
		}),
		goroutines: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gosoul_goroutines",
			Help: "Number of active goroutines.",
		}),
	}

	m.registry.MustRegister(
		m.sessionsConnected,
		m.connectionsTotal,
		m.commandsTotal,
		m.soulActionsTotal,
		m.parseErrorsTotal,
		m.unknownVerbsTotal,
		m.customSocials,
		m.uptimeSeconds,
		m.memoryHeapBytes,
		m.goroutines,
	)

	return m
}

// Update refreshes all gauge metrics from current game state.
func (m *Metrics) Update() {
	tcp, ws := m.game.SessionCounts()
	m.sessionsConnected.WithLabelValues("tcp").Set(float64(tcp))
	m.sessionsConnected.WithLabelValues("websocket").Set(float64(ws))

	m.customSocials.Set(float64(len(m.game.Catalog.CustomNames())))
	m.uptimeSeconds.Set(time.Since(m.startTime).Seconds())

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	m.memoryHeapBytes.Set(float64(mem.HeapAlloc))
	m.goroutines.Set(float64(runtime.NumGoroutine()))
}

// Handler returns an http.Handler that updates metrics before serving them.
func (m *Metrics) Handler() http.Handler {
	inner := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.Update()
		inner.ServeHTTP(w, r)
	})
}
