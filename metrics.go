package vfsource

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the prometheus instrumentation for a Source. All Source
// methods tolerate a nil *Metrics, so instrumentation is strictly opt-in via
// WithMetrics.
type Metrics struct {
	polls             prometheus.Counter
	listErrors        prometheus.Counter
	dirtyFiles        prometheus.Counter
	retrievalErrors   prometheus.Counter
	payloadsDelivered prometheus.Counter
	payloadsAcked     prometheus.Counter
	payloadsFailed    prometheus.Counter
	filesPending      prometheus.Gauge
	payloadsInFlight  prometheus.Gauge
}

// NewMetrics builds the Source collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		polls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vfsource_polls_total",
			Help: "Completed poll cycles, including cycles that found nothing dirty.",
		}),
		listErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vfsource_list_errors_total",
			Help: "Poll cycles aborted by a remote listing failure.",
		}),
		dirtyFiles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vfsource_files_dirty_total",
			Help: "Descriptors judged new or changed and queued for retrieval.",
		}),
		retrievalErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vfsource_retrieval_errors_total",
			Help: "Dirty descriptors dropped because their retrieval failed.",
		}),
		payloadsDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vfsource_payloads_delivered_total",
			Help: "Payloads handed to receivers.",
		}),
		payloadsAcked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vfsource_payloads_acknowledged_total",
			Help: "Payloads acknowledged via OnSend.",
		}),
		payloadsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vfsource_payloads_failed_total",
			Help: "Payloads failed via OnFailure and requeued for redelivery.",
		}),
		filesPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vfsource_files_pending",
			Help: "Retrieved files waiting to be drained into a payload.",
		}),
		payloadsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vfsource_payloads_in_flight",
			Help: "Payloads delivered but not yet acknowledged or failed.",
		}),
	}

	reg.MustRegister(
		m.polls,
		m.listErrors,
		m.dirtyFiles,
		m.retrievalErrors,
		m.payloadsDelivered,
		m.payloadsAcked,
		m.payloadsFailed,
		m.filesPending,
		m.payloadsInFlight,
	)

	return m
}

func (m *Metrics) polled() {
	if m == nil {
		return
	}
	m.polls.Inc()
}

func (m *Metrics) listFailed() {
	if m == nil {
		return
	}
	m.listErrors.Inc()
}

func (m *Metrics) filesDirty(n int) {
	if m == nil {
		return
	}
	m.dirtyFiles.Add(float64(n))
}

func (m *Metrics) retrievalFailed() {
	if m == nil {
		return
	}
	m.retrievalErrors.Inc()
}

func (m *Metrics) payloadDelivered(inFlight, pending int) {
	if m == nil {
		return
	}
	m.payloadsDelivered.Inc()
	m.payloadsInFlight.Set(float64(inFlight))
	m.filesPending.Set(float64(pending))
}

func (m *Metrics) payloadAcknowledged(inFlight int) {
	if m == nil {
		return
	}
	m.payloadsAcked.Inc()
	m.payloadsInFlight.Set(float64(inFlight))
}

func (m *Metrics) payloadFailed(inFlight, pending int) {
	if m == nil {
		return
	}
	m.payloadsFailed.Inc()
	m.payloadsInFlight.Set(float64(inFlight))
	m.filesPending.Set(float64(pending))
}

func (m *Metrics) pendingChanged(pending int) {
	if m == nil {
		return
	}
	m.filesPending.Set(float64(pending))
}
