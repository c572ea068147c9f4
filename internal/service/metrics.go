package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"icon-active-addresses/internal/model"
)

// Metrics is safe to use as a nil pointer, in which case nothing is recorded.
type Metrics struct {
	BlocksResolved  prometheus.Counter
	PagesFetched    prometheus.Counter
	PageRetries     prometheus.Counter
	ActiveAddresses prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	labels := prometheus.Labels{"chain": string(model.ChainICON)}
	return &Metrics{
		BlocksResolved: f.NewCounter(prometheus.CounterOpts{
			Name:        "harvester_blocks_resolved_total",
			Help:        "Timestamps resolved to block heights.",
			ConstLabels: labels,
		}),
		PagesFetched: f.NewCounter(prometheus.CounterOpts{
			Name:        "harvester_pages_fetched_total",
			Help:        "Non-empty transaction pages fetched.",
			ConstLabels: labels,
		}),
		PageRetries: f.NewCounter(prometheus.CounterOpts{
			Name:        "harvester_page_retries_total",
			Help:        "Failed page fetch attempts.",
			ConstLabels: labels,
		}),
		ActiveAddresses: f.NewGauge(prometheus.GaugeOpts{
			Name:        "harvester_active_addresses",
			Help:        "Unique sender addresses collected so far.",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) blockResolved() {
	if m != nil {
		m.BlocksResolved.Inc()
	}
}

func (m *Metrics) pageFetched() {
	if m != nil {
		m.PagesFetched.Inc()
	}
}

func (m *Metrics) pageRetried() {
	if m != nil {
		m.PageRetries.Inc()
	}
}

func (m *Metrics) setAddresses(n int) {
	if m != nil {
		m.ActiveAddresses.Set(float64(n))
	}
}
