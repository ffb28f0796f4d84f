package observability_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/mealy/internal/runtime"
	"github.com/aretw0/mealy/pkg/domain"
	"github.com/aretw0/mealy/pkg/dsl"
	"github.com/aretw0/mealy/pkg/observability"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	table, err := dsl.New().
		From(0).On(1, 1, 9).
		From(1).On(0, 0, 4).On(1, 1, 2).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	m, err := runtime.NewMachine(table, runtime.WithHooks(metrics.Hooks()))
	if err != nil {
		t.Fatalf("NewMachine failed: %v", err)
	}

	ctx := context.Background()
	if _, err := m.Transition(ctx, []domain.Input{1, 1, 0}); err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if _, err := m.Transition(ctx, []domain.Input{1, 5}); err == nil {
		t.Fatal("expected undefined transition error")
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	if len(families) != 2 {
		t.Fatalf("expected 2 metric families, got %d", len(families))
	}

	// 0->1, 1->1, 1->0, then 0->1 before the halt: four transitions total.
	totals := map[string]float64{}
	for _, fam := range families {
		var sum float64
		for _, metric := range fam.GetMetric() {
			sum += metric.GetCounter().GetValue()
		}
		totals[fam.GetName()] = sum
	}
	if totals["mealy_transitions_total"] != 4 {
		t.Errorf("expected 4 transitions, got %v", totals["mealy_transitions_total"])
	}
	if totals["mealy_undefined_transitions_total"] != 1 {
		t.Errorf("expected 1 halt, got %v", totals["mealy_undefined_transitions_total"])
	}
}

func TestCombine(t *testing.T) {
	var stepCalls, haltCalls int
	counting := domain.LifecycleHooks{
		OnStep: func(context.Context, *domain.StepEvent) { stepCalls++ },
		OnHalt: func(context.Context, *domain.HaltEvent) { haltCalls++ },
	}
	stepOnly := domain.LifecycleHooks{
		OnStep: func(context.Context, *domain.StepEvent) { stepCalls++ },
	}

	combined := observability.Combine(counting, stepOnly)
	ctx := context.Background()
	combined.OnStep(ctx, &domain.StepEvent{})
	combined.OnHalt(ctx, &domain.HaltEvent{})

	if stepCalls != 2 {
		t.Errorf("expected 2 step calls, got %d", stepCalls)
	}
	if haltCalls != 1 {
		t.Errorf("expected 1 halt call, got %d", haltCalls)
	}
}
