// Package metrics provides Prometheus metrics for the lineup team-draw service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Draw outcome label values.
const (
	OutcomeOK            = "ok"
	OutcomeNoPlayers     = "no_players"
	OutcomeInvalidTeams  = "invalid_team_count"
	OutcomeSurplus       = "surplus"
	OutcomeInsufficient  = "insufficient"
	OutcomeUnknownID     = "unknown_player"
	OutcomeInvalidPlayer = "invalid_player"
)

// Manager manages all Prometheus metrics for the lineup service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Draw Metrics - the allocation core
	drawsTotal          *prometheus.CounterVec
	drawLatency         prometheus.Histogram
	phantomsInserted    prometheus.Counter
	phantomGoalkeepers  prometheus.Counter
	teamsWithoutKeeper  prometheus.Counter
	drawTierSpread      prometheus.Histogram
	drawHistorySize     prometheus.Gauge
	drawHistoryEvicted  prometheus.Counter
	selectedPlayers     prometheus.Histogram
	requestedTeamCounts prometheus.Histogram

	// Roster Metrics
	rosterPlayers     prometheus.Gauge
	rosterGoalkeepers prometheus.Gauge
	rosterOperations  *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "lineup",
		subsystem:        "draw",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// name prepends the optional metric prefix.
func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.drawsTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("draws_total"),
		Help:        "Total number of team draws by outcome",
		ConstLabels: labels,
	}, []string{"outcome"})

	m.drawLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("latency_milliseconds"),
		Help:        "Histogram of allocation latency in milliseconds",
		Buckets:     []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		ConstLabels: labels,
	})

	m.phantomsInserted = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("phantoms_inserted_total"),
		Help:        "Total number of placeholder players synthesized to complete teams",
		ConstLabels: labels,
	})

	m.phantomGoalkeepers = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("phantom_goalkeepers_total"),
		Help:        "Total number of placeholder players promoted to goalkeeper",
		ConstLabels: labels,
	})

	m.teamsWithoutKeeper = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("teams_without_goalkeeper_total"),
		Help:        "Total number of drawn teams left without a dedicated goalkeeper",
		ConstLabels: labels,
	})

	m.drawTierSpread = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("tier_spread"),
		Help:        "Difference between the highest and lowest team tier sums per draw",
		Buckets:     []float64{0, 1, 2, 3, 4, 6, 8},
		ConstLabels: labels,
	})

	m.drawHistorySize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("history_size"),
		Help:        "Number of draws currently retained for lookup and sharing",
		ConstLabels: labels,
	})

	m.drawHistoryEvicted = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("history_evicted_total"),
		Help:        "Total number of draws evicted from the bounded history",
		ConstLabels: labels,
	})

	m.selectedPlayers = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("selected_players"),
		Help:        "Number of players selected per draw request",
		Buckets:     []float64{5, 10, 15, 20, 25, 30, 40},
		ConstLabels: labels,
	})

	m.requestedTeamCounts = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("requested_teams"),
		Help:        "Number of teams requested per draw",
		Buckets:     []float64{2, 3, 4, 5, 6, 8},
		ConstLabels: labels,
	})

	m.rosterPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "roster",
		Name:        m.name("players"),
		Help:        "Number of players registered in the roster",
		ConstLabels: labels,
	})

	m.rosterGoalkeepers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "roster",
		Name:        m.name("goalkeepers"),
		Help:        "Number of goalkeepers registered in the roster",
		ConstLabels: labels,
	})

	m.rosterOperations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "roster",
		Name:        m.name("operations_total"),
		Help:        "Total number of roster operations by kind",
		ConstLabels: labels,
	}, []string{"operation"})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   "http",
			Name:        m.name("requests_total"),
			Help:        "Total number of HTTP requests by endpoint and method",
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   "http",
			Name:        m.name("request_duration_milliseconds"),
			Help:        "HTTP request duration in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   "errors",
			Name:        m.name("by_component_total"),
			Help:        "Total number of errors by component and type",
			ConstLabels: labels,
		},
		[]string{"component", "error_type"},
	)

	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   "errors",
			Name:        m.name("by_type_total"),
			Help:        "Total number of errors by type and severity",
			ConstLabels: labels,
		},
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   "errors",
			Name:        m.name("by_endpoint_total"),
			Help:        "Total number of errors by endpoint, method, and type",
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.errorLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   "errors",
			Name:        m.name("latency_milliseconds"),
			Help:        "Latency of operations that resulted in errors",
			Buckets:     m.histogramBuckets,
			ConstLabels: labels,
		},
		[]string{"component", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "system",
		Name:        m.name("memory_usage_bytes"),
		Help:        "System memory usage in bytes",
		ConstLabels: labels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "system",
		Name:        m.name("goroutine_count"),
		Help:        "Number of goroutines",
		ConstLabels: labels,
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "system",
		Name:        m.name("gc_pause_time_milliseconds"),
		Help:        "GC pause time in milliseconds",
		Buckets:     []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		ConstLabels: labels,
	})
}

// Draw Metrics Functions.

// RecordDraw increments the draw counter for the given outcome.
func RecordDraw(outcome string) {
	if !globalManager.enabled {
		return
	}
	globalManager.drawsTotal.WithLabelValues(outcome).Inc()
}

// RecordDrawLatency records allocation latency in milliseconds.
func RecordDrawLatency(latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.drawLatency.Observe(latencyMs)
}

// RecordDrawRequest records the shape of an incoming draw request.
func RecordDrawRequest(selected, teams int) {
	if !globalManager.enabled {
		return
	}
	globalManager.selectedPlayers.Observe(float64(selected))
	globalManager.requestedTeamCounts.Observe(float64(teams))
}

// RecordPhantomsInserted adds n synthesized placeholder players.
func RecordPhantomsInserted(n int) {
	if !globalManager.enabled || n <= 0 {
		return
	}
	globalManager.phantomsInserted.Add(float64(n))
}

// RecordPhantomGoalkeeper increments the promoted placeholder goalkeeper counter.
func RecordPhantomGoalkeeper() {
	if !globalManager.enabled {
		return
	}
	globalManager.phantomGoalkeepers.Inc()
}

// RecordTeamWithoutGoalkeeper increments the counter of teams drawn without a keeper.
func RecordTeamWithoutGoalkeeper() {
	if !globalManager.enabled {
		return
	}
	globalManager.teamsWithoutKeeper.Inc()
}

// RecordTierSpread observes the tier-sum spread of a completed draw.
func RecordTierSpread(spread int) {
	if !globalManager.enabled {
		return
	}
	globalManager.drawTierSpread.Observe(float64(spread))
}

// UpdateDrawHistorySize sets the number of retained draws.
func UpdateDrawHistorySize(size int) {
	if !globalManager.enabled {
		return
	}
	globalManager.drawHistorySize.Set(float64(size))
}

// RecordDrawHistoryEviction increments the draw history eviction counter.
func RecordDrawHistoryEviction() {
	if !globalManager.enabled {
		return
	}
	globalManager.drawHistoryEvicted.Inc()
}

// Roster Metrics Functions.

// UpdateRosterSize sets the roster player and goalkeeper gauges.
func UpdateRosterSize(players, goalkeepers int) {
	if !globalManager.enabled {
		return
	}
	globalManager.rosterPlayers.Set(float64(players))
	globalManager.rosterGoalkeepers.Set(float64(goalkeepers))
}

// RecordRosterOperation increments the roster operation counter.
func RecordRosterOperation(operation string) {
	if !globalManager.enabled {
		return
	}
	globalManager.rosterOperations.WithLabelValues(operation).Inc()
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// RefreshInterval returns how often gauge metrics should be refreshed.
func (m *Manager) RefreshInterval() time.Duration {
	return m.refreshInterval
}

// RefreshInterval returns the refresh interval of the global manager.
func RefreshInterval() time.Duration {
	return globalManager.RefreshInterval()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
