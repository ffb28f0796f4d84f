package mealy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/mealy"
	"github.com/aretw0/mealy/pkg/adapters/yamltable"
	"github.com/aretw0/mealy/pkg/domain"
	"github.com/aretw0/mealy/pkg/dsl"
)

func newMachine(t *testing.T) *mealy.Machine {
	t.Helper()
	table, err := dsl.New().
		From(0).On(1, 1, 9).
		From(1).On(0, 0, 4).On(1, 1, 2).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	m, err := mealy.New(table)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

func TestMachine_EndToEnd(t *testing.T) {
	ctx := context.Background()
	m := newMachine(t)
	defer m.Close()

	out, err := m.Transition(ctx, 1, 1, 0)
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if out != 4 {
		t.Errorf("expected output 4, got %d", out)
	}
	if m.Current() != 0 {
		t.Errorf("expected state 0, got %d", m.Current())
	}
}

func TestMachine_FromYAMLDocument(t *testing.T) {
	ctx := context.Background()

	table, err := yamltable.Parse([]byte(`
initial: 0
transitions:
  - { from: 0, input: 1, to: 1, output: 9 }
  - { from: 1, input: 0, to: 0, output: 4 }
  - { from: 1, input: 1, to: 1, output: 2 }
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	m, err := mealy.New(table)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer m.Close()

	out, err := m.Transition(ctx, 1, 1, 0)
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if out != 4 || m.Current() != 0 {
		t.Errorf("expected (4, state 0), got (%d, state %d)", out, m.Current())
	}
}

func TestMachine_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := newMachine(t)
	defer m.Close()

	if _, err := m.Transition(ctx, 1); err != nil {
		t.Fatalf("Transition failed: %v", err)
	}

	table, _ := dsl.New().
		From(0).On(1, 1, 9).
		From(1).On(0, 0, 4).On(1, 1, 2).
		Build()
	resumed, err := mealy.New(table, mealy.WithSnapshot(m.Snapshot()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer resumed.Close()

	out, err := resumed.Transition(ctx, 0)
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if out != 4 || resumed.Current() != 0 {
		t.Errorf("expected (4, state 0), got (%d, state %d)", out, resumed.Current())
	}
}

func TestMachine_CloseSemantics(t *testing.T) {
	ctx := context.Background()
	m := newMachine(t)

	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := m.Transition(ctx, 1); !errors.Is(err, domain.ErrMachineClosed) {
		t.Errorf("expected ErrMachineClosed, got %v", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestNew_NilTable(t *testing.T) {
	if _, err := mealy.New(nil); !errors.Is(err, domain.ErrNilTable) {
		t.Errorf("expected ErrNilTable, got %v", err)
	}
}
