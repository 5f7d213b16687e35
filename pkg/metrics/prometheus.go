// Package metrics provides Prometheus metrics for the dailystat service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Command dispatch
	commandsServed  *prometheus.CounterVec
	unknownCommands prometheus.Counter
	gateBusy        prometheus.Counter

	// Daily titles
	titlesClaimed prometheus.Counter

	// Consent lifecycle
	consentRequested prometheus.Counter
	consentAccepted  prometheus.Counter
	consentDenied    prometheus.Counter
	consentExpired   prometheus.Counter
	consentPending   prometheus.Gauge

	// Usage ledger
	ledgerUsers    prometheus.Gauge
	ledgerCommands prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "dailystat",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      name,
			Help:      help,
		}
	}
	gaugeOpts := func(name, help string) prometheus.GaugeOpts {
		return prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      name,
			Help:      help,
		}
	}

	m.httpRequests = prometheus.NewCounterVec(
		factory("http_requests_total", "HTTP requests by endpoint, method and status."),
		[]string{"endpoint", "method", "status"},
	)
	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request duration in milliseconds.",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	m.commandsServed = prometheus.NewCounterVec(
		factory("commands_served_total", "Commands served by kind."),
		[]string{"kind"},
	)
	m.unknownCommands = prometheus.NewCounter(
		factory("unknown_commands_total", "Requests for unrecognized command names."))
	m.gateBusy = prometheus.NewCounter(
		factory("gate_busy_total", "Requests rejected because the command gate was held."))

	m.titlesClaimed = prometheus.NewCounter(
		factory("titles_claimed_total", "Daily titles claimed."))

	m.consentRequested = prometheus.NewCounter(
		factory("consent_requested_total", "Consent handshakes started."))
	m.consentAccepted = prometheus.NewCounter(
		factory("consent_accepted_total", "Consent requests accepted."))
	m.consentDenied = prometheus.NewCounter(
		factory("consent_denied_total", "Consent requests denied."))
	m.consentExpired = prometheus.NewCounter(
		factory("consent_expired_total", "Consent requests expired unanswered."))
	m.consentPending = prometheus.NewGauge(
		gaugeOpts("consent_pending", "Pending consent requests."))

	m.ledgerUsers = prometheus.NewGauge(
		gaugeOpts("ledger_users", "Distinct users seen by the usage ledger."))
	m.ledgerCommands = prometheus.NewGauge(
		gaugeOpts("ledger_commands", "Distinct commands seen by the usage ledger."))

	if !m.enabled {
		return
	}
	m.registry.MustRegister(
		m.httpRequests,
		m.httpRequestDuration,
		m.commandsServed,
		m.unknownCommands,
		m.gateBusy,
		m.titlesClaimed,
		m.consentRequested,
		m.consentAccepted,
		m.consentDenied,
		m.consentExpired,
		m.consentPending,
		m.ledgerUsers,
		m.ledgerCommands,
	)
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers over the global manager.

// RecordHTTPRequest records one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records the duration of one HTTP request in ms.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}

// RecordCommand records a served command by kind (stat, list, interaction, ...).
func RecordCommand(kind string) {
	globalManager.commandsServed.WithLabelValues(kind).Inc()
}

// RecordUnknownCommand records a request for an unrecognized command.
func RecordUnknownCommand() {
	globalManager.unknownCommands.Inc()
}

// RecordGateBusy records a request turned away by a held gate.
func RecordGateBusy() {
	globalManager.gateBusy.Inc()
}

// RecordTitleClaimed records a daily title claim.
func RecordTitleClaimed() {
	globalManager.titlesClaimed.Inc()
}

// RecordConsentRequested records a started consent handshake.
func RecordConsentRequested() {
	globalManager.consentRequested.Inc()
}

// RecordConsentAccepted records an accepted consent request.
func RecordConsentAccepted() {
	globalManager.consentAccepted.Inc()
}

// RecordConsentDenied records a denied consent request.
func RecordConsentDenied() {
	globalManager.consentDenied.Inc()
}

// RecordConsentExpired records an expired consent request.
func RecordConsentExpired() {
	globalManager.consentExpired.Inc()
}

// UpdateConsentPending sets the pending consent gauge.
func UpdateConsentPending(n int) {
	globalManager.consentPending.Set(float64(n))
}

// UpdateLedgerUsers sets the distinct-user gauge.
func UpdateLedgerUsers(n int) {
	globalManager.ledgerUsers.Set(float64(n))
}

// UpdateLedgerCommands sets the distinct-command gauge.
func UpdateLedgerCommands(n int) {
	globalManager.ledgerCommands.Set(float64(n))
}
