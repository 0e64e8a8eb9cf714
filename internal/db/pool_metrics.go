package db

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/v2/event"
)

// PoolMetrics exposes the mongo connection pool state to prometheus.
type PoolMetrics struct {
	open           prometheus.Gauge
	inUse          prometheus.Gauge
	checkoutFailed prometheus.Counter
}

func NewPoolMetrics(namespace string, constLabels prometheus.Labels) *PoolMetrics {
	return &PoolMetrics{
		open: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "mongo_pool",
			Name:        "open_connections",
			Help:        "Connections currently open in the mongo pool.",
			ConstLabels: constLabels,
		}),
		inUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "mongo_pool",
			Name:        "in_use_connections",
			Help:        "Connections currently checked out of the mongo pool.",
			ConstLabels: constLabels,
		}),
		checkoutFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "mongo_pool",
			Name:        "checkout_failed_total",
			Help:        "Failed attempts to check a connection out of the mongo pool.",
			ConstLabels: constLabels,
		}),
	}
}

func (m *PoolMetrics) Monitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: m.handle,
	}
}

func (m *PoolMetrics) handle(e *event.PoolEvent) {
	switch e.Type {
	case event.ConnectionCreated:
		m.open.Inc()
	case event.ConnectionClosed:
		m.open.Dec()
	case event.ConnectionCheckedOut:
		m.inUse.Inc()
	case event.ConnectionCheckedIn:
		m.inUse.Dec()
	case event.ConnectionCheckOutFailed:
		m.checkoutFailed.Inc()
	}
}

func (m *PoolMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.open.Describe(ch)
	m.inUse.Describe(ch)
	m.checkoutFailed.Describe(ch)
}

func (m *PoolMetrics) Collect(ch chan<- prometheus.Metric) {
	m.open.Collect(ch)
	m.inUse.Collect(ch)
	m.checkoutFailed.Collect(ch)
}
