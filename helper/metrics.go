package helper

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors shared by the repository,
// the observer manager and the warehouse.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	EventsBroadcast  *prometheus.CounterVec
	ObserverFailures *prometheus.CounterVec
	RepositoryArrays prometheus.Gauge
	WarehouseRecords prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// If reg is nil a fresh registry is used.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		EventsBroadcast: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_broadcast_total",
			Help:      "Total repository events broadcast to observers by kind",
		}, []string{"kind"}),
		ObserverFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "observer_failures_total",
			Help:      "Total observer failures isolated during broadcast",
		}, []string{"observer"}),
		RepositoryArrays: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "repository_arrays",
			Help:      "Number of word arrays currently stored in the repository",
		}),
		WarehouseRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "warehouse_records",
			Help:      "Number of statistics records currently cached by the warehouse",
		}),
	}

	var errs []error
	for _, c := range []prometheus.Collector{m.EventsBroadcast, m.ObserverFailures, m.RepositoryArrays, m.WarehouseRecords} {
		errs = append(errs, reg.Register(c))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, NewError("register metrics", err)
	}

	return m, nil
}

// EventBroadcast counts one broadcast of the given event kind
func (m *Metrics) EventBroadcast(kind string) {
	if m == nil {
		return
	}
	m.EventsBroadcast.WithLabelValues(kind).Inc()
}

// ObserverFailed counts one isolated failure of the named observer
func (m *Metrics) ObserverFailed(name string) {
	if m == nil {
		return
	}
	m.ObserverFailures.WithLabelValues(name).Inc()
}

// SetRepositorySize records the current number of stored arrays
func (m *Metrics) SetRepositorySize(n int) {
	if m == nil {
		return
	}
	m.RepositoryArrays.Set(float64(n))
}

// SetWarehouseSize records the current number of cached statistics records
func (m *Metrics) SetWarehouseSize(n int) {
	if m == nil {
		return
	}
	m.WarehouseRecords.Set(float64(n))
}
