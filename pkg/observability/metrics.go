package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tollgate/tollgate/pkg/domain"
)

// Metrics holds the Prometheus collectors for the hook layer.
type Metrics struct {
	ValidatorPasses *prometheus.CounterVec
	Halts           *prometheus.CounterVec
	CallbackRuns    *prometheus.CounterVec
}

// NewMetrics registers the hook-layer collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ValidatorPasses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tollgate",
			Name:      "validator_passes_total",
			Help:      "Transitions whose validators all passed, by event.",
		}, []string{"event"}),
		Halts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tollgate",
			Name:      "halts_total",
			Help:      "Transitions vetoed by a validator, by event.",
		}, []string{"event"}),
		CallbackRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tollgate",
			Name:      "callback_runs_total",
			Help:      "Completed callback runs, by phase and event.",
		}, []string{"phase", "event"}),
	}
}

// Observer adapts the collectors into a domain.Observer usable with
// tollgate.WithObserver.
func (m *Metrics) Observer() domain.Observer {
	return domain.Observer{
		OnValidatorPass: func(_ context.Context, e *domain.HookEvent) {
			m.ValidatorPasses.WithLabelValues(string(e.Event)).Inc()
		},
		OnHalt: func(_ context.Context, e *domain.HookEvent) {
			m.Halts.WithLabelValues(string(e.Event)).Inc()
		},
		OnCallback: func(_ context.Context, e *domain.HookEvent) {
			m.CallbackRuns.WithLabelValues(string(e.Phase), string(e.Event)).Inc()
		},
	}
}
