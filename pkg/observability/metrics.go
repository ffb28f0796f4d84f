// Package observability exposes machine activity as Prometheus metrics,
// wired in through domain.LifecycleHooks so the engine core stays free of
// metrics dependencies.
package observability

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/mealy/pkg/domain"
)

// Metrics bundles the Prometheus collectors for machine activity.
// State spaces of exported controllers are small, so labeling per state is
// safe cardinality-wise.
type Metrics struct {
	transitions *prometheus.CounterVec
	halts       *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors.
// Pass prometheus.DefaultRegisterer for the usual global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mealy_transitions_total",
				Help: "Total number of applied transitions, by destination state",
			},
			[]string{"to_state"},
		),
		halts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mealy_undefined_transitions_total",
				Help: "Total number of batches halted on an undefined transition, by state",
			},
			[]string{"state"},
		),
	}
	reg.MustRegister(m.transitions, m.halts)
	return m
}

// Hooks returns lifecycle hooks feeding these collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			m.transitions.WithLabelValues(strconv.Itoa(int(e.To))).Inc()
		},
		OnHalt: func(_ context.Context, e *domain.HaltEvent) {
			m.halts.WithLabelValues(strconv.Itoa(int(e.State))).Inc()
		},
	}
}

// Combine merges hook sets so metrics can coexist with host callbacks.
// Hooks run in argument order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range hooks {
				if h.OnStep != nil {
					h.OnStep(ctx, e)
				}
			}
		},
		OnHalt: func(ctx context.Context, e *domain.HaltEvent) {
			for _, h := range hooks {
				if h.OnHalt != nil {
					h.OnHalt(ctx, e)
				}
			}
		},
	}
}
